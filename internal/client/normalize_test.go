package client

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/and161185/metrics-dashboard/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type cardSummary struct {
	Label   string
	Metrics string
}

func summarize(t *testing.T, cards ...model.Card) []cardSummary {
	t.Helper()
	out := make([]cardSummary, 0, len(cards))
	for _, c := range cards {
		b, err := json.Marshal(c.Metrics)
		require.NoError(t, err)
		out = append(out, cardSummary{Label: c.TypeCarte, Metrics: string(b)})
	}
	return out
}

func TestResolveCard(t *testing.T) {
	tests := []struct {
		name string
		body string
		want cardSummary
	}{
		{"bare_array", `[{"name":"avg","value":1},{"name":"max","value":9,"type":"FastPath"}]`,
			cardSummary{"PERFORMANCE_SERVICE", `[{"name":"avg","value":1},{"name":"max","value":9,"type":"FastPath"}]`}},
		{"empty_array", `[]`, cardSummary{"PERFORMANCE_SERVICE", `[]`}},
		{"typeCarte_overrides", `{"typeCarte":"X","metrics":[{"name":"a","value":1}]}`,
			cardSummary{"X", `[{"name":"a","value":1}]`}},
		{"items_without_label", `{"items":[{"name":"a","value":true}]}`,
			cardSummary{"PERFORMANCE_SERVICE", `[{"name":"a","value":true}]`}},
		{"metrics_before_items", `{"items":[2],"metrics":[1]}`, cardSummary{"PERFORMANCE_SERVICE", `[1]`}},
		{"null_metrics_uses_items", `{"metrics":null,"items":[2]}`, cardSummary{"PERFORMANCE_SERVICE", `[2]`}},
		{"non_array_metrics_scans", `{"metrics":"nope","items":[2],"other":[3]}`, cardSummary{"PERFORMANCE_SERVICE", `[2]`}},
		{"first_array_property", `{"foo":"bar","list":[1,2,3]}`, cardSummary{"PERFORMANCE_SERVICE", `[1,2,3]`}},
		{"first_of_many", `{"a":{"x":1},"b":["b"],"c":["c"]}`, cardSummary{"PERFORMANCE_SERVICE", `["b"]`}},
		{"integer_keys_first", `{"z":["z"],"10":["ten"],"2":["two"]}`, cardSummary{"PERFORMANCE_SERVICE", `["two"]`}},
		{"no_array", `{"foo":"bar"}`, cardSummary{"PERFORMANCE_SERVICE", `[]`}},
		{"null_typeCarte", `{"typeCarte":null,"items":[]}`, cardSummary{"PERFORMANCE_SERVICE", `[]`}},
		{"numeric_typeCarte", `{"typeCarte":7,"items":[]}`, cardSummary{"7", `[]`}},
		{"scalar_body", `"hello"`, cardSummary{"PERFORMANCE_SERVICE", `[]`}},
		{"null_body", `null`, cardSummary{"PERFORMANCE_SERVICE", `[]`}},
		{"duplicate_key_last_wins", `{"m":1,"x":["first"],"m":["late"]}`, cardSummary{"PERFORMANCE_SERVICE", `["late"]`}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveCard(json.RawMessage(tc.body), "PERFORMANCE_SERVICE")
			require.NotNil(t, got.Metrics)
			if diff := cmp.Diff([]cardSummary{tc.want}, summarize(t, got)); diff != "" {
				t.Errorf("resolveCard mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveGroups(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []cardSummary
	}{
		{"bare_array", `[{"name":"a","value":1}]`,
			[]cardSummary{{"DEFAULT", `[{"name":"a","value":1}]`}}},
		{"array_groups", `{"PERFORMANCE_SERVICE":[1],"DELETE_SERVICE":[2]}`,
			[]cardSummary{{"PERFORMANCE_SERVICE", `[1]`}, {"DELETE_SERVICE", `[2]`}}},
		{"object_groups", `{"svcA":{"metrics":[1]},"svcB":{"metrics":null},"svcC":{"other":[3]}}`,
			[]cardSummary{{"svcA", `[1]`}, {"svcB", `[]`}}},
		{"mixed", `{"label":"x","a":[1],"b":{"metrics":[2]}}`,
			[]cardSummary{{"a", `[1]`}, {"b", `[2]`}}},
		{"no_groups", `{"typeCarte":"X","count":3}`,
			[]cardSummary{{"X", `[]`}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveGroups(json.RawMessage(tc.body))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, summarize(t, got...)); diff != "" {
				t.Errorf("resolveGroups mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveGroups_Malformed(t *testing.T) {
	_, err := resolveGroups(json.RawMessage(`42`))
	require.Error(t, err)
	require.True(t, errors.Is(err, errMalformedBody))
}

func TestArrayIndex(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"0", true},
		{"42", true},
		{"4294967294", true},
		{"4294967295", false},
		{"01", false},
		{"-1", false},
		{"1.5", false},
		{"abc", false},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			_, ok := arrayIndex(tc.key)
			require.Equal(t, tc.want, ok)
		})
	}
}
