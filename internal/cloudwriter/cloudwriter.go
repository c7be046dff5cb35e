package cloudwriter

// CloudWriter buffers bytes destined for an object store and flushes them on
// Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
