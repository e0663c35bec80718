// Package scoring turns recipe names into scores via an external completion
// service and decodes the service's free-text replies.
package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/okian/chefcontest/internal/domain/model"
)

// Stage names the parser step that produced a result.
type Stage string

// Parser stages, in the order they are attempted.
const (
	StageStructured Stage = "structured"
	StageDelimited  Stage = "delimited"
	StageUnparsed   Stage = "unparsed"
)

// ReasonUnparsed prefixes every reason produced for a reply no stage understood.
const ReasonUnparsed = "could not parse response"

// fencePattern matches a reply wrapped in a ``` block with an optional language tag.
var fencePattern = regexp.MustCompile("(?s)^```(?:[A-Za-z0-9_+-]*[ \\t]*\\r?\\n)?(.*?)\\r?\\n?```$")

// inlineTagPattern matches a language tag sharing its line with a JSON body,
// as in ```json {"score": 8}```.
var inlineTagPattern = regexp.MustCompile("(?s)^[A-Za-z][A-Za-z0-9_+-]*[ \\t]*([{\\[].*)$")

// attempt tries to decode text and reports whether it matched.
type attempt struct {
	stage Stage
	fn    func(text string) (model.ScoreResult, bool)
}

var chain = []attempt{
	{stage: StageStructured, fn: decodeStructured},
	{stage: StageDelimited, fn: decodeDelimited},
}

// Parse converts a raw completion reply into a ScoreResult. It never fails:
// replies no stage understands yield Score 0 and a ReasonUnparsed reason.
func Parse(raw string) model.ScoreResult {
	res, _ := ParseWithStage(raw)
	return res
}

// ParseWithStage is Parse that also reports which stage matched.
func ParseWithStage(raw string) (model.ScoreResult, Stage) {
	text := StripFence(raw)
	for _, a := range chain {
		if res, ok := a.fn(text); ok {
			return res, a.stage
		}
	}
	return model.ScoreResult{Score: 0, Reason: ReasonUnparsed}, StageUnparsed
}

// StripFence removes surrounding ``` delimiters and their language tag.
// Text without a complete fence is returned trimmed but otherwise untouched.
func StripFence(raw string) string {
	text := strings.TrimSpace(raw)
	m := fencePattern.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	inner := strings.TrimSpace(m[1])
	if t := inlineTagPattern.FindStringSubmatch(inner); t != nil {
		return t[1]
	}
	return inner
}

// decodeStructured accepts a JSON object holding both "score" and "reason".
func decodeStructured(text string) (model.ScoreResult, bool) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || dec.More() {
		return model.ScoreResult{}, false
	}
	rawScore, hasScore := obj["score"]
	rawReason, hasReason := obj["reason"]
	if !hasScore || !hasReason {
		return model.ScoreResult{}, false
	}
	score, ok := toInt(rawScore)
	if !ok {
		return model.ScoreResult{}, false
	}
	return model.ScoreResult{Score: score, Reason: toText(rawReason)}, true
}

// decodeDelimited handles "<score>, <reason>". A reply with a comma whose
// first segment is not an integer still matches, with a diagnostic reason.
func decodeDelimited(text string) (model.ScoreResult, bool) {
	parts := strings.SplitN(text, ",", 2)
	if len(parts) != 2 {
		return model.ScoreResult{}, false
	}
	score, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.ScoreResult{Score: 0, Reason: fmt.Sprintf("%s: %q", ReasonUnparsed, text)}, true
	}
	return model.ScoreResult{Score: score, Reason: strings.TrimSpace(parts[1])}, true
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil || !fitsInt(f) {
			return 0, false
		}
		return int(f), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// fitsInt reports whether f truncates to a representable int.
// NaN fails both comparisons.
func fitsInt(f float64) bool {
	return f >= float64(math.MinInt) && f < -float64(math.MinInt)
}

func toText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
