package rapidapi

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// envelope wraps every api-nba payload. A nil Response means the key was missing or null.
type envelope[T any] struct {
	Response *[]T `json:"response"`
}

type teamResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	City     *string `json:"city"`
	Nickname *string `json:"nickname"`
}

type playerResponse struct {
	ID        int           `json:"id"`
	FirstName string        `json:"firstname"`
	LastName  string        `json:"lastname"`
	Height    *heightResult `json:"height"`
	Weight    *weightResult `json:"weight"`
}

type heightResult struct {
	Meters measure `json:"meters"`
}

type weightResult struct {
	Kilograms measure `json:"kilograms"`
}

// measure accepts a string, a number or null. The upstream is not consistent about which it sends.
type measure struct {
	value *string
}

func (m *measure) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		m.value = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		m.value = &s
		return nil
	}
	s := string(data)
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("rapidapi: measure %s: %w", s, err)
	}
	m.value = &s
	return nil
}
