package mapper

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

func TestToAPIUserRendersEmptyCollections(t *testing.T) {
	u := entities.User{ID: uuid.New(), Email: "a@b.c"}

	body, err := json.Marshal(ToAPIUser(u))
	require.NoError(t, err)

	require.Contains(t, string(body), `"analyses":[]`)
	require.Contains(t, string(body), `"linked_folder_ids":[]`)
	require.Contains(t, string(body), `"processed_filenames":[]`)
}
