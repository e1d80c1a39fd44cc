package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2000-01-01")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if d.Year() != 2000 || d.Month() != time.January || d.Day() != 1 {
		t.Fatalf("unexpected date: %v", d)
	}

	for _, bad := range []string{"", "2000-13-01", "01/01/2000", "not-a-date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(1995, time.June, 15)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"1995-06-15"` {
		t.Fatalf("unexpected encoding: %s", data)
	}

	var out Date
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Equal(d.Time) {
		t.Fatalf("round trip mismatch: got %v want %v", out, d)
	}
}

func TestUserJSONNeverExposesPasswordHash(t *testing.T) {
	user := User{
		ID:           "id-1",
		Name:         "Alice",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret",
	}
	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for key := range fields {
		if key == "password" || key == "password_hash" || key == "PasswordHash" {
			t.Fatalf("encoded user leaks secret field %q", key)
		}
	}
}
