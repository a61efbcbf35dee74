package api

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yferhat/taskdeck/internal/domain/project"
)

func TestDecodeList_Shapes(t *testing.T) {
	want := []project.Project{
		{ID: 1, Title: "Alpha"},
		{ID: 2, Title: "Beta"},
	}

	cases := map[string]string{
		"bare array": `[{"id":1,"title":"Alpha"},{"id":2,"title":"Beta"}]`,
		"content":    `{"content":[{"id":1,"title":"Alpha"},{"id":2,"title":"Beta"}]}`,
		"data":       `{"data":[{"id":1,"title":"Alpha"},{"id":2,"title":"Beta"}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := decodeList[project.Project]([]byte(body))
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestDecodeList_ContentWinsOverData(t *testing.T) {
	body := `{"content":[{"id":1,"title":"Alpha"}],"data":[{"id":2,"title":"Beta"}]}`
	got, err := decodeList[project.Project]([]byte(body))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(1), got[0].ID)
}

func TestDecodeList_UnknownEnvelopeIsEmpty(t *testing.T) {
	got, err := decodeList[project.Project]([]byte(`{"items":[{"id":1}]}`))
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = decodeList[project.Project]([]byte(`{"content":"not an array"}`))
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = decodeList[project.Project](nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDecodeList_ScalarBodiesAreEmpty(t *testing.T) {
	for _, body := range []string{`42`, `true`, `null`, `"oops"`} {
		got, err := decodeList[project.Project]([]byte(body))
		require.NoError(t, err, "body %s", body)
		require.Empty(t, got, "body %s", body)
	}
}

func TestDecodeList_Malformed(t *testing.T) {
	_, err := decodeList[project.Project]([]byte(`[{"id":`))
	require.Error(t, err)
}
