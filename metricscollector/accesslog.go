package metricscollector

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"fleetscaler/config"
	"fleetscaler/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	gocache "github.com/patrickmn/go-cache"
)

// AccessLogReader tails the proxy access log and keeps a sliding window
// of parsed records. The proxy is expected to write one line per request
// in the form "$msec $upstream_response_time", e.g.
//
//	1724668800.123 0.045
//
// Requests that never reached an upstream log "-" for the response time
// and are skipped.
type AccessLogReader struct {
	logger lager.Logger
	clock  clock.Clock
	path   string
	window time.Duration
	cache  *gocache.Cache
	offset int64
	seq    uint64
}

func NewAccessLogReader(logger lager.Logger, clock clock.Clock, conf *config.CollectorConfig) *AccessLogReader {
	return &AccessLogReader{
		logger: logger.Session("accesslog-reader"),
		clock:  clock,
		path:   conf.AccessLogPath,
		window: conf.AccessRecordWindow,
		cache:  gocache.New(conf.AccessRecordWindow, 2*conf.AccessRecordWindow),
	}
}

func (r *AccessLogReader) Recent(window time.Duration) ([]models.AccessRecord, error) {
	if err := r.ingest(); err != nil {
		return nil, err
	}

	cutoff := r.clock.Now().Add(-window)
	records := []models.AccessRecord{}
	for _, item := range r.cache.Items() {
		record := item.Object.(models.AccessRecord)
		if record.Timestamp.After(cutoff) {
			records = append(records, record)
		}
	}
	return records, nil
}

func (r *AccessLogReader) ingest() error {
	file, err := os.Open(r.path)
	if err != nil {
		return err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return err
	}
	if stat.Size() < r.offset {
		// Log was rotated; start over from the beginning.
		r.offset = 0
	}

	if _, err := file.Seek(r.offset, 0); err != nil {
		return err
	}

	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			// A torn tail the proxy is still writing; leave it for
			// the next ingest.
			break
		}
		if err != nil {
			return err
		}
		r.offset += int64(len(line))

		record, ok := r.parseLine(strings.TrimSuffix(line, "\n"))
		if !ok {
			continue
		}
		r.seq++
		r.cache.Set(strconv.FormatUint(r.seq, 10), record, gocache.DefaultExpiration)
	}
	return nil
}

func (r *AccessLogReader) parseLine(line string) (models.AccessRecord, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[1] == "-" {
		return models.AccessRecord{}, false
	}

	ts, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		r.logger.Debug("skipping-malformed-access-line", lager.Data{"line": line})
		return models.AccessRecord{}, false
	}
	latency, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		r.logger.Debug("skipping-malformed-access-line", lager.Data{"line": line})
		return models.AccessRecord{}, false
	}

	sec, frac := math.Modf(ts)
	return models.AccessRecord{
		Timestamp: time.Unix(int64(sec), int64(frac*float64(time.Second))),
		Latency:   time.Duration(latency * float64(time.Second)),
	}, true
}
