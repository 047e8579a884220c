package domain

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func unquote(data []byte) (string, error) {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return "", errors.New("expected a JSON string")
	}
	return v, nil
}
