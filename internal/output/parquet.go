package output

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/cloudwriter"
	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/schema"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// SchemaResolver maps a topic to the parquet schema of its event struct.
type SchemaResolver func(topic string) (*schema.SchemaHandler, error)

type ParquetOutput struct {
	basePath           string
	folder             string
	resolveSchema      SchemaResolver
	mu                 sync.Mutex
	writers            map[string]*writer.ParquetWriter
	writerMutexes      map[string]*sync.Mutex
	files              map[string]source.ParquetFile
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

func NewParquetOutput(config *models.Config, resolver SchemaResolver) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath:      config.OutputPath,
		folder:        config.OutputFolder,
		resolveSchema: resolver,
		writers:       make(map[string]*writer.ParquetWriter),
		writerMutexes: make(map[string]*sync.Mutex),
		files:         make(map[string]source.ParquetFile),
	}

	if config.OutputDestination != "local" {
		var factory cloudwriter.CloudWriterFactory
		var err error

		switch config.CloudStorage.Provider {
		case "s3":
			factory, err = cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}

		p.cloudWriterFactory = factory
		p.cloudBucketName = config.CloudStorage.BucketName
	}

	p.cleanup()
	return p, nil
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}

	partitionPath, err := partitionFor(event)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(p.basePath, p.folder, topic, partitionPath)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	writerKey := fmt.Sprintf("%s_%s", topic, partitionPath)
	p.mu.Lock()
	pw, ok := p.writers[writerKey]
	if !ok {
		pw, err = p.createNewWriter(writerKey, fullPath, topic)
		if err != nil {
			p.mu.Unlock()
			return fmt.Errorf("failed to create new writer: %w", err)
		}
	}
	writerMutex := p.writerMutexes[writerKey]
	p.mu.Unlock()

	writerMutex.Lock()
	defer writerMutex.Unlock()

	if err := pw.Write(event); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (p *ParquetOutput) createNewWriter(writerKey, fullPath, topic string) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	var err error
	if p.cloudWriterFactory != nil {
		objectPath := filepath.Join(p.folder, topic, fullPath, "data.parquet")
		cloudWriter, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = NewCloudParquetFile(cloudWriter)
	} else {
		filePath := filepath.Join(fullPath, "data.parquet")
		fw, err = local.NewLocalFileWriter(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	sc, err := p.resolveSchema(topic)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, nil, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	pw.SchemaHandler = sc

	p.writers[writerKey] = pw
	p.writerMutexes[writerKey] = &sync.Mutex{}
	p.files[writerKey] = fw

	return pw, nil
}

// cleanup removes parquet output left over from a previous run.
func (p *ParquetOutput) cleanup() {
	fullPath := filepath.Join(p.basePath, p.folder)
	err := filepath.Walk(fullPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".parquet" {
			if err := os.Remove(path); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Error cleaning up Parquet files: %v", err)
	}
}

func (p *ParquetOutput) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	for key, pw := range p.writers {
		mutex, ok := p.writerMutexes[key]
		if !ok {
			continue
		}
		mutex.Lock()
		if err := pw.WriteStop(); err != nil {
			lastErr = err
			log.Printf("Error closing writer for key %s: %v", key, err)
		}
		if f, ok := p.files[key]; ok {
			if err := f.Close(); err != nil {
				lastErr = err
				log.Printf("Error closing file for key %s: %v", key, err)
			}
		}
		mutex.Unlock()
	}
	return lastErr
}
