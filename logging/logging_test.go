/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn"}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry must be filtered at warn level:\n%s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn entry missing:\n%s", out)
	}
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "chatty"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "visible") {
		t.Fatalf("unexpected filtering:\n%s", out)
	}
}

func TestNew_EmitsTimestampedJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info"}, &buf)
	logger.Info().Msg("hello")

	out := buf.String()
	for _, want := range [...]string{`"time":`, `"level":"info"`, `"message":"hello"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("entry missing %s:\n%s", want, out)
		}
	}
}
