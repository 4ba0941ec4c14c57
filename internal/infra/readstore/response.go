package readstore

import (
	"bytes"
	"context"
	"encoding/json"

	"wedding-rsvp/internal/domain/rsvp"
	"wedding-rsvp/internal/infra"
	"wedding-rsvp/internal/infra/converter"
	"wedding-rsvp/internal/pkg/fileutil"
)

// ResponseReadStore is the lock-free read side of the response list.
type ResponseReadStore struct {
	path string
}

func NewResponseReadStore(path string) *ResponseReadStore {
	return &ResponseReadStore{
		path: path,
	}
}

func (s *ResponseReadStore) LoadAll(ctx context.Context) ([]*rsvp.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadResponses(s.path)
}

// ReadResponses decodes the response list at path. A missing or empty file is
// an empty list; a corrupt one is an error so it is never overwritten.
func ReadResponses(path string) ([]*rsvp.Response, error) {
	data, err := fileutil.ReadIfExists(path)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read responses", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []converter.ResponseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to decode responses", err, infra.KindDecodeFailure)
	}

	list, err := converter.ResponsesFromRecords(records)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid response record", err, infra.KindDecodeFailure)
	}
	return list, nil
}
