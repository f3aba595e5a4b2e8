package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"prayertimes.app/internal/core/prayer"
)

func testCard() prayer.Card {
	return prayer.Card{
		Location:         "London, United Kingdom",
		CoordinatesLabel: "51.51°, -0.13°",
		TimezoneLabel:    "Europe/London",
		SunEvents:        []prayer.CardEntry{{Name: "Sunrise", Time: "7:13 AM"}},
		Prayers: []prayer.CardEntry{
			{Name: "Fajr", Time: "5:30 AM"},
			{Name: "Zuhr", Time: "12:01 PM"},
		},
	}
}

func TestWriteCard_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCard(&buf, testCard(), "json"))

	var decoded prayer.Card
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, testCard(), decoded)
	assert.Contains(t, buf.String(), `"sunEvents"`)
}

func TestWriteCard_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCard(&buf, testCard(), "yaml"))

	var decoded prayer.Card
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, testCard(), decoded)
	assert.Contains(t, buf.String(), "timezone: Europe/London")
}

func TestWriteCard_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCard(&buf, testCard(), "table"))

	out := buf.String()
	assert.Contains(t, out, "London, United Kingdom\n")
	assert.Contains(t, out, "Europe/London")
	assert.Regexp(t, `Sunrise\s+7:13 AM`, out)
	assert.Regexp(t, `Zuhr\s+12:01 PM`, out)
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Sunrise")), bytes.Index(buf.Bytes(), []byte("Fajr")))
}

func TestWriteCard_TableUnknownLocation(t *testing.T) {
	card := testCard()
	card.Location = ""

	var buf bytes.Buffer
	require.NoError(t, writeCard(&buf, card, "table"))
	assert.Contains(t, buf.String(), "Unknown location")
}

func TestTodayCmd_RejectsBadFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown output", args: []string{"today", "--output", "xml"}, wantErr: "unknown output format"},
		{name: "latitude without longitude", args: []string{"today", "--lat", "10"}, wantErr: "must be given together"},
		{name: "latitude out of range", args: []string{"today", "--lat", "91", "--lng", "10"}, wantErr: "coordinates out of range"},
		{name: "longitude out of range", args: []string{"today", "--lat", "10", "--lng=-181"}, wantErr: "coordinates out of range"},
		{name: "unknown timezone", args: []string{"today", "--timezone", "Mars/Olympus"}, wantErr: "unknown timezone"},
		{name: "non-positive timeout", args: []string{"today", "--timeout", "0s"}, wantErr: "--timeout must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd()
			root.SetArgs(append(tt.args, "--env-file", "does-not-exist.env"))
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTodayOptions_Validate(t *testing.T) {
	valid := todayOptions{lat: 51.5, lng: -0.12, timezone: "UTC", output: "json", timeout: time.Second}
	assert.NoError(t, valid.validate(true))

	outOfRange := valid
	outOfRange.lat = 120
	assert.Error(t, outOfRange.validate(true))
	assert.NoError(t, outOfRange.validate(false))

	noTimezone := valid
	noTimezone.timezone = ""
	assert.NoError(t, noTimezone.validate(true))
}
