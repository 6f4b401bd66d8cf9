package sse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

var (
	sseEventEnd = []byte("\n")

	errResponseJSONCreationFailed = errors.New("could not create JSON for response")
	errClientWritingFailed        = errors.New("could not write to the client")
	errConvertToFlusherFailed     = errors.New("could not instantiate http sse flusher")
)

// ResponseWriter is used to send data through keep-alive SSE connection.
// The writer and flusher are protected by lock since the stream loop and heartbeats share the connection.
type ResponseWriter struct {
	res     http.ResponseWriter
	flusher http.Flusher
	lock    *sync.Mutex
}

// Write sends data through the connection
func (f *ResponseWriter) Write(data []byte) (int, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	n, err := f.res.Write(data)
	if err == nil {
		f.flusher.Flush()
	}

	return n, err
}

// Send propagates message payload as an event named after its category and name.
func (f *ResponseWriter) Send(msg message) error {
	out, err := json.Marshal(msg.payload)
	if err != nil {
		return fmt.Errorf("%w: %s", errResponseJSONCreationFailed, err)
	}

	_, err = f.Write(formatSseEvent(msg.category, msg.name, out))
	if err != nil {
		return fmt.Errorf("writing %s.%s failed: %w: %s", msg.category, msg.name, errClientWritingFailed, err)
	}

	return nil
}

// Comment writes an SSE comment line, ignored by clients but keeping the connection busy.
func (f *ResponseWriter) Comment(text string) error {
	_, err := f.Write([]byte(fmt.Sprintf(":%s\n\n", text)))
	return err
}

func sseResponseWriter(res http.ResponseWriter) (ResponseWriter, error) {
	flusher, ok := res.(http.Flusher)
	if !ok {
		return ResponseWriter{}, errConvertToFlusherFailed
	}

	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Content-Type", "text/event-stream")
	res.Header().Set("Access-Control-Allow-Origin", "*")

	return ResponseWriter{
		res:     res,
		flusher: flusher,
		lock:    &sync.Mutex{},
	}, nil
}

func formatSseEvent(category category, eventName string, data []byte) []byte {
	var out []byte

	out = append(out, []byte(fmt.Sprintf("event:%s.%s\n", category, eventName))...)
	for _, dataEntry := range bytes.Split(data, []byte("\n")) {
		out = append(out, []byte(fmt.Sprintf("data:%s\n", dataEntry))...)
	}

	return append(out, sseEventEnd...)
}
