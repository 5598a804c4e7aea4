package dockside

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/moby/term"
)

// followStream decodes the JSON message stream the daemon produces for long
// running operations such as build, pull and push. Each message is rendered
// to progress when a writer is given, aux payloads are handed to the aux
// callback, and the first daemon-reported error ends the stream.
//
// The returned slice holds every message decoded before the stream ended,
// including the failing one.
func followStream(ctx context.Context, body io.Reader, progress io.Writer, aux func(jsonmessage.JSONMessage)) ([]jsonmessage.JSONMessage, error) {
	var isTerminal bool
	if progress != nil {
		_, isTerminal = term.GetFdInfo(progress)
	}

	var log []jsonmessage.JSONMessage
	decoder := json.NewDecoder(body)
	for {
		select {
		case <-ctx.Done():
			return log, ctx.Err()
		default:
		}

		var msg jsonmessage.JSONMessage
		if err := decoder.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return log, nil
			}
			return log, fmt.Errorf("failed to decode daemon stream: %w\nDocker may have returned malformed JSON", err)
		}

		log = append(log, msg)

		if msg.Error != nil {
			// Display skips error messages, so the failing line is
			// written out by hand before the stream ends.
			if progress != nil {
				fmt.Fprintln(progress, msg.Error.Message)
			}
			return log, msg.Error
		}

		if progress != nil {
			_ = msg.Display(progress, isTerminal)
		}
		if aux != nil && msg.Aux != nil {
			aux(msg)
		}
	}
}
