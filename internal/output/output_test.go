package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func eventJSON(t *testing.T, ts time.Time) []byte {
	t.Helper()
	msg, err := json.Marshal(map[string]interface{}{
		"timestamp": ts.Unix(),
		"eventType": "venue_profile",
		"placeId":   "v1",
		"name":      "Bar Test",
	})
	if err != nil {
		t.Fatal(err)
	}
	return msg
}

func partitionPath(ts time.Time) string {
	year, month, day := ts.Date()
	return fmt.Sprintf("year=%d/month=%02d/day=%02d/hour=%02d", year, month, day, ts.Hour())
}

func TestJSONOutputPartitionsByEventTime(t *testing.T) {
	dir := t.TempDir()
	out := NewJSONOutput(dir, "venice_bars")

	ts := time.Date(2025, 7, 18, 21, 0, 0, 0, time.UTC).Local()
	if err := out.WriteMessage("venue_profile_events", eventJSON(t, ts)); err != nil {
		t.Fatalf("WriteMessage failed: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	path := filepath.Join(dir, "venice_bars", "venue_profile_events", partitionPath(ts), "data.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected partitioned data file: %v", err)
	}

	var event map[string]interface{}
	if err := json.Unmarshal(data, &event); err != nil {
		t.Fatalf("file does not hold valid JSON lines: %v", err)
	}
	if event["placeId"] != "v1" {
		t.Errorf("unexpected event content: %v", event)
	}
}

func TestCSVOutputWritesSortedHeaders(t *testing.T) {
	dir := t.TempDir()
	out := NewCSVOutput(dir, "venice_bars")

	ts := time.Now()
	if err := out.WriteMessage("crowd_snapshot_events", eventJSON(t, ts)); err != nil {
		t.Fatalf("WriteMessage failed: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	path := filepath.Join(dir, "venice_bars", "crowd_snapshot_events", partitionPath(ts), "data.csv")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected partitioned data file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("csv file is empty")
	}
}

func TestWriteMessageRejectsMissingTimestamp(t *testing.T) {
	out := NewJSONOutput(t.TempDir(), "venice_bars")
	if err := out.WriteMessage("venue_profile_events", []byte(`{"name":"no clock"}`)); err == nil {
		t.Error("expected error for event without timestamp")
	}
}

func TestConsoleOutput(t *testing.T) {
	out := &ConsoleOutput{}
	if err := out.WriteMessage("venue_profile_events", []byte(`{"ok":true}`)); err != nil {
		t.Errorf("console write failed: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Errorf("console close failed: %v", err)
	}
}
