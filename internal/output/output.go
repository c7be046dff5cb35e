package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Destination receives serialized analyzer events keyed by topic.
type Destination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	line := fmt.Sprintf("[%s] %s\n", topic, string(msg))
	if _, err := os.Stdout.Write([]byte(line)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	_ = os.Stdout.Sync()
	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}

type CSVOutput struct {
	basePath string
	folder   string
	files    map[string]*csv.Writer
	headers  map[string][]string
}

func NewCSVOutput(basePath, folder string) *CSVOutput {
	return &CSVOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*csv.Writer),
		headers:  make(map[string][]string),
	}
}

func (c *CSVOutput) WriteMessage(topic string, msg []byte) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}

	partitionPath, err := partitionFor(event)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(c.basePath, c.folder, topic, partitionPath)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	fileKey := fmt.Sprintf("%s_%s", topic, partitionPath)
	csvWriter, ok := c.files[fileKey]
	if !ok {
		file, err := os.Create(filepath.Join(fullPath, "data.csv"))
		if err != nil {
			return err
		}
		csvWriter = csv.NewWriter(file)
		c.files[fileKey] = csvWriter

		headers := sortedKeys(event)
		if err := csvWriter.Write(headers); err != nil {
			return err
		}
		c.headers[fileKey] = headers
	}

	row := make([]string, len(c.headers[fileKey]))
	for i, header := range c.headers[fileKey] {
		if value, ok := event[header]; ok {
			row[i] = fmt.Sprintf("%v", value)
		}
	}
	if err := csvWriter.Write(row); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func (c *CSVOutput) Close() error {
	for _, csvWriter := range c.files {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			return err
		}
	}
	return nil
}

type JSONOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}

	partitionPath, err := partitionFor(event)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(j.basePath, j.folder, topic, partitionPath)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	fileKey := fmt.Sprintf("%s_%s", topic, partitionPath)
	file, ok := j.files[fileKey]
	if !ok {
		var err error
		file, err = os.Create(filepath.Join(fullPath, "data.json"))
		if err != nil {
			return err
		}
		j.files[fileKey] = file
	}

	if _, err := file.Write(msg); err != nil {
		return err
	}
	_, err = file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// partitionFor derives a year/month/day/hour partition path from the event's
// unix timestamp field.
func partitionFor(event map[string]interface{}) (string, error) {
	timestamp, ok := event["timestamp"].(float64)
	if !ok {
		return "", fmt.Errorf("invalid timestamp")
	}
	eventTime := time.Unix(int64(timestamp), 0)
	year, month, day := eventTime.Date()
	return fmt.Sprintf("year=%d/month=%02d/day=%02d/hour=%02d",
		year, month, day, eventTime.Hour()), nil
}

func sortedKeys(event map[string]interface{}) []string {
	var keys []string
	for key := range event {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
