package main

import (
	json "github.com/bytedance/sonic"

	"spreadsheetEngine/contracts"
)

// CellJsonSerializer renders cell payloads for API responses and webhook
// deliveries.
type CellJsonSerializer struct{}

func NewCellJsonSerializer() *CellJsonSerializer {
	return &CellJsonSerializer{}
}

func (s *CellJsonSerializer) Marshal(payload *contracts.CellPayload) ([]byte, error) {
	return json.Marshal(payload)
}

func (s *CellJsonSerializer) Unmarshal(data []byte) (*contracts.CellPayload, error) {
	payload := &contracts.CellPayload{}
	if err := json.Unmarshal(data, payload); err != nil {
		return nil, err
	}
	return payload, nil
}
