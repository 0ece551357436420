package jsonfile

import (
	"encoding/json"
	"os"
)

// readArray читает файл целиком и декодирует единственный JSON-массив записей
func readArray[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	return records, nil
}
