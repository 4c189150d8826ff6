package content

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListCoercesNonArrays(t *testing.T) {
	t.Parallel()

	inputs := []string{`null`, `"go, rust"`, `42`, `{"a":1}`, `true`}
	for _, input := range inputs {
		var list StringList
		require.NoError(t, json.Unmarshal([]byte(input), &list), input)
		assert.Empty(t, list, input)
	}
}

func TestStringListDropsInvalidElements(t *testing.T) {
	t.Parallel()

	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`["Go", 3, null, "  ", " SQL "]`), &list))
	assert.Equal(t, StringList{"Go", "SQL"}, list)
}

func TestStringListInsideRowNeverFails(t *testing.T) {
	t.Parallel()

	var project Project
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"title":"Site","stack":"not a list"}`), &project))
	assert.Equal(t, ID("7"), project.ID)
	assert.Empty(t, project.Stack)
}

func TestStringListHead(t *testing.T) {
	t.Parallel()

	list := StringList{"a", "b", "c", "d", "e", "f"}
	head, rest := list.Head(4)
	assert.Equal(t, StringList{"a", "b", "c", "d"}, head)
	assert.Equal(t, 2, rest)

	head, rest = StringList{"a"}.Head(3)
	assert.Equal(t, StringList{"a"}, head)
	assert.Zero(t, rest)
}

func TestStringListMarshalsEmptyArray(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(StringList(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestIDAcceptsStringsAndNumbers(t *testing.T) {
	t.Parallel()

	var ids []ID
	require.NoError(t, json.Unmarshal([]byte(`["a1", 12, null]`), &ids))
	assert.Equal(t, []ID{"a1", "12", ""}, ids)

	var bad ID
	assert.Error(t, json.Unmarshal([]byte(`{}`), &bad))
}

func TestParseDateLayouts(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, value := range []string{"2024-03-15", "2024-03-15T00:00:00Z", "2024-03-15 00:00:00", "2024-03-15T00:00:00+00:00"} {
		got := ParseDate(value)
		assert.True(t, got.Equal(want), value)
	}
	assert.False(t, ParseDate("yesterday").Valid())
	assert.False(t, ParseDate("").Valid())
}

func TestDateUnmarshalNullAndGarbage(t *testing.T) {
	t.Parallel()

	var role Experience
	require.NoError(t, json.Unmarshal([]byte(`{"start_date":"2022-01-01","end_date":null}`), &role))
	assert.True(t, role.StartDate.Valid())
	assert.True(t, role.Current())

	require.NoError(t, json.Unmarshal([]byte(`{"end_date":17}`), &role))
	assert.True(t, role.Current())
}

func TestDateMarshal(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	data, err = json.Marshal(ParseDate("2024-03-15"))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15T00:00:00Z"`, string(data))
}

func TestProjectInitial(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "É", Project{Title: "Émile"}.Initial())
	assert.Equal(t, "", Project{}.Initial())
}
