package shared

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

var jsonAPI = sonic.Config{
	UseNumber:        true,
	EscapeHTML:       false,
	CompactMarshaler: true,
}.Froze()

// JSONMarshal and JSONUnmarshal are handed to fiber as its codec.
func JSONMarshal(v interface{}) ([]byte, error) {
	return jsonAPI.Marshal(v)
}

func JSONUnmarshal(data []byte, v interface{}) error {
	return jsonAPI.Unmarshal(data, v)
}

// ResponseError is the flat error body used across the API surface.
func ResponseError(c *fiber.Ctx, httpCode int, message string) error {
	return c.Status(httpCode).JSON(ErrorResponse{Error: message})
}
