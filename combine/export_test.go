package combine_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvraster/combine"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTable(t).WriteCSV(&buf))
	require.Equal(t, "value,first,second,count\n485,10,20,5\n517,10,21,2\n549,11,21,1\n", buf.String())
}

func TestReadCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	tab := sampleTable(t)
	require.NoError(t, tab.WriteCSV(&buf))

	back, err := combine.ReadCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, tab.Entries(), back.Entries())
}

func TestReadCSVErrors(t *testing.T) {
	cases := map[string]string{
		"BadHeader":  "code,a,b,n\n",
		"BadNumber":  "value,first,second,count\nx,1,2,3\n",
		"WrongCode":  "value,first,second,count\n17,2,3,1\n",
		"ShortRow":   "value,first,second,count\n18,2,3\n",
		"EmptyInput": "",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := combine.ReadCSV(strings.NewReader(in))
			require.Error(t, err)
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tab := sampleTable(t)
	data, err := json.Marshal(tab)
	require.NoError(t, err)
	require.JSONEq(t, `{"cells":8,"entries":[
		{"value":485,"first":10,"second":20,"count":5},
		{"value":517,"first":10,"second":21,"count":2},
		{"value":549,"first":11,"second":21,"count":1}]}`, string(data))

	var back combine.Table
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, tab.Entries(), back.Entries())
	require.Equal(t, 8, back.Total())
}

func TestJSONRejectsBadCells(t *testing.T) {
	var back combine.Table
	err := json.Unmarshal([]byte(`{"cells":3,"entries":[{"value":18,"first":2,"second":3,"count":1}]}`), &back)
	require.ErrorIs(t, err, combine.ErrInvalidEntry)
}

func TestYAMLRoundTrip(t *testing.T) {
	tab := sampleTable(t)
	data, err := yaml.Marshal(tab)
	require.NoError(t, err)
	require.Contains(t, string(data), "cells: 8")

	var back combine.Table
	require.NoError(t, yaml.Unmarshal(data, &back))
	require.Equal(t, tab.Entries(), back.Entries())

	err = yaml.Unmarshal([]byte("cells: 1\nentries:\n  - {value: 17, first: 2, second: 3, count: 1}\n"), &back)
	require.ErrorIs(t, err, combine.ErrInvalidEntry)
}
