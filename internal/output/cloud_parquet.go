package output

import (
	"fmt"
	"io"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/cloudwriter"
	"github.com/xitongsys/parquet-go/source"
)

// CloudParquetFile adapts a CloudWriter to the parquet file interface. Cloud
// objects are write-only and created implicitly, so Open, Create and Read are
// no-ops or unsupported.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cloudWriter cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cloudWriter}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
