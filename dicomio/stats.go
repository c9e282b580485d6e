package dicomio

import "go.uber.org/atomic"

// SourceStats counts the physical operations issued against one or
// more sources. The counters are atomic so several workers, each
// reading through its own source, can share a single sink.
type SourceStats struct {
	reads      atomic.Int64
	seeks      atomic.Int64
	bytes_read atomic.Int64
}

type SourceStatsSnapshot struct {
	Reads     int64 `json:"Reads"`
	Seeks     int64 `json:"Seeks"`
	BytesRead int64 `json:"BytesRead"`
}

func (self *SourceStats) Snapshot() SourceStatsSnapshot {
	return SourceStatsSnapshot{
		Reads:     self.reads.Load(),
		Seeks:     self.seeks.Load(),
		BytesRead: self.bytes_read.Load(),
	}
}

// WithStats wraps source so every read and seek is counted in stats.
func WithStats(source ByteSource, stats *SourceStats) ByteSource {
	return &statsSource{source: source, stats: stats}
}

type statsSource struct {
	source ByteSource
	stats  *SourceStats
}

func (self *statsSource) Read(buf []byte) (int, error) {
	n, err := self.source.Read(buf)
	self.stats.reads.Inc()
	self.stats.bytes_read.Add(int64(n))
	return n, err
}

func (self *statsSource) Seek(offset int64, whence int) (int64, error) {
	self.stats.seeks.Inc()
	return self.source.Seek(offset, whence)
}

func (self *statsSource) Readable() bool {
	return self.source.Readable()
}
