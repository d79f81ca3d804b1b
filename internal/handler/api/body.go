package api

import (
	"io"

	"github.com/labstack/echo/v4"
)

const maxPayloadBytes = 1 << 20

func readBody(c echo.Context) ([]byte, error) {
	return io.ReadAll(io.LimitReader(c.Request().Body, maxPayloadBytes))
}
