package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenEntry(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "nested", in: `{"id":1,"attributes":{"name":"A","order":2}}`, want: `{"id":1,"name":"A","order":2}`},
		{name: "flat", in: `{"id":1,"name":"A"}`, want: `{"id":1,"name":"A"}`},
		{name: "null attributes", in: `{"id":1,"attributes":null}`, want: `{"id":1,"attributes":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat, err := flattenEntry(json.RawMessage(tt.in))

			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(flat))
		})
	}
}

func TestDecodeList_KeepsDeclaredFields(t *testing.T) {
	records, err := decodeList[serviceRecord]([]byte(`{"data":[{"id":2,"attributes":{
		"icon":"flask","name":"Lab","slug":"laboratory","description":"Tests","serviceType":"lab",
		"listItems":["CBC","LFT"],"hours":"7-9","order":3}}]}`))

	require.NoError(t, err)
	assert.Equal(t, []serviceRecord{{
		ID: 2, Icon: "flask", Name: "Lab", Slug: "laboratory", Description: "Tests",
		ServiceType: "lab", ListItems: []string{"CBC", "LFT"}, Hours: "7-9", Order: 3,
	}}, records)
}

func TestDecodeList_Errors(t *testing.T) {
	_, err := decodeList[serviceRecord]([]byte(`not json`))
	assert.Error(t, err)

	_, err = decodeList[serviceRecord]([]byte(`{"data":{"id":1}}`))
	assert.Error(t, err)

	records, err := decodeList[serviceRecord]([]byte(`{"data":null}`))
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestMediaRelation_Shapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "nested", in: `{"data":{"id":1,"attributes":{"url":"/a.jpg"}}}`, want: "/a.jpg"},
		{name: "flat data", in: `{"data":{"id":1,"url":"/b.jpg"}}`, want: "/b.jpg"},
		{name: "direct", in: `{"url":"/c.jpg"}`, want: "/c.jpg"},
		{name: "null data", in: `{"data":null}`, want: ""},
		{name: "list", in: `{"data":[{"id":1}]}`, want: ""},
		{name: "string", in: `"oops"`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m mediaRelation

			require.NoError(t, json.Unmarshal([]byte(tt.in), &m))
			assert.Equal(t, tt.want, m.URL)
		})
	}
}
