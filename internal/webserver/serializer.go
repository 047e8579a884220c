package webserver

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"

	"github.com/go-playground/validator/v10"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonSerializer plugs json-iterator in as echo's JSON codec.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid JSON payload: %v", err))
	}
	return nil
}

// payloadValidator wires go-playground/validator behind echo's Validator hook.
type payloadValidator struct {
	v *validator.Validate
}

func (pv *payloadValidator) Validate(i interface{}) error {
	return pv.v.Struct(i)
}
