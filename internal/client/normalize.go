package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/and161185/metrics-dashboard/model"
)

var (
	errMalformedBody = errors.New("response is neither an array nor an object")
	errTrailingData  = errors.New("unexpected data after JSON value")
)

// property is one own property of a JSON object.
type property struct {
	key   string
	value json.RawMessage
}

type object []property

func (o object) get(key string) (json.RawMessage, bool) {
	for _, p := range o {
		if p.key == key {
			return p.value, true
		}
	}
	return nil, false
}

// jsonKind reports the first significant byte of a JSON value.
func jsonKind(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func isNull(raw json.RawMessage) bool {
	return raw == nil || jsonKind(raw) == 'n'
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	if jsonKind(raw) != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items, true
}

// asObject decodes a JSON object keeping property enumeration order:
// integer-like keys ascending first, then the remaining keys as written.
// A repeated key keeps its first position and its last value.
func asObject(raw json.RawMessage) (object, bool) {
	if jsonKind(raw) != '{' {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, false
	}

	var obj object
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := tok.(string)
		if !ok {
			return nil, false
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, false
		}
		if i, seen := index[key]; seen {
			obj[i].value = v
			continue
		}
		index[key] = len(obj)
		obj = append(obj, property{key: key, value: v})
	}

	sort.SliceStable(obj, func(i, j int) bool {
		ni, iok := arrayIndex(obj[i].key)
		nj, jok := arrayIndex(obj[j].key)
		if iok && jok {
			return ni < nj
		}
		return iok && !jok
	})
	return obj, true
}

// arrayIndex reports whether key is a canonical array index.
func arrayIndex(key string) (uint64, bool) {
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == 1<<32-1 || strconv.FormatUint(n, 10) != key {
		return 0, false
	}
	return n, true
}

// label renders a typeCarte value; strings are unquoted, anything else keeps its JSON text.
func label(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// resolveCard turns any decoded response body into a Card.
// The decision is first-match: bare array, then metrics/items, then the first array property.
func resolveCard(data json.RawMessage, fallbackLabel string) model.Card {
	if items, ok := asArray(data); ok {
		return model.Card{TypeCarte: fallbackLabel, Metrics: items}
	}

	card := model.Card{TypeCarte: fallbackLabel, Metrics: []json.RawMessage{}}
	obj, ok := asObject(data)
	if !ok {
		return card
	}

	if v, found := obj.get("typeCarte"); found && !isNull(v) {
		card.TypeCarte = label(v)
	}

	arr, found := obj.get("metrics")
	if !found || isNull(arr) {
		arr, _ = obj.get("items")
	}
	if items, ok := asArray(arr); ok {
		card.Metrics = items
		return card
	}

	for _, p := range obj {
		if items, ok := asArray(p.value); ok {
			card.Metrics = items
			return card
		}
	}
	return card
}

// resolveGroups splits a bulk response into one Card per service grouping.
func resolveGroups(data json.RawMessage) ([]model.Card, error) {
	if items, ok := asArray(data); ok {
		return []model.Card{{TypeCarte: string(model.Default), Metrics: items}}, nil
	}

	obj, ok := asObject(data)
	if !ok {
		return nil, fmt.Errorf("resolve groups: %w", errMalformedBody)
	}

	var cards []model.Card
	for _, p := range obj {
		if items, ok := asArray(p.value); ok {
			cards = append(cards, model.Card{TypeCarte: p.key, Metrics: items})
			continue
		}
		group, ok := asObject(p.value)
		if !ok {
			continue
		}
		if v, found := group.get("metrics"); found {
			items, ok := asArray(v)
			if !ok {
				items = []json.RawMessage{}
			}
			cards = append(cards, model.Card{TypeCarte: p.key, Metrics: items})
		}
	}

	if len(cards) == 0 {
		return []model.Card{resolveCard(data, string(model.Default))}, nil
	}
	return cards, nil
}
