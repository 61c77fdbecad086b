package logger

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

// TestMinimalEncoderNeverDiscardsFields ensures the minimal encoder NEVER
// silently discards log fields. Known fields get special formatting; all
// others must still appear as key=value.
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "test",
		Message:    "Testing field preservation",
	}

	testFields := []struct {
		field    zapcore.Field
		mustFind string // What we must find in the output
	}{
		// Specially formatted fields keep their values visible
		{zap.String("query", "appl"), "appl"},
		{zap.String("fingerprint", "8pXkQ2"), "8pXkQ2"},
		{zap.Int("matches", 3), "3"},
		{zap.Int("candidates", 40), "40"},
		{zap.Int64("duration_us", 112), "112µs"},
		{zap.Int("size", 42), "42 entries"},

		// Arbitrary field names that should NEVER be dropped
		{zap.String("random_field_xyz", "important_data"), "random_field_xyz=important_data"},
		{zap.Int("critical_count", 999), "critical_count=999"},
		{zap.String("error_details", "window inverted"), "error_details=window inverted"},
		{zap.Bool("deprecated", true), "deprecated=true"},
		{zap.Float64("cutoff", 0.5), "cutoff=0.5"},
		{zap.Strings("files", []string{"a.txt", "b.txt"}), "files=[a.txt b.txt]"},

		// Fields with underscores and dots (edge cases)
		{zap.String("field_with_underscores", "test"), "field_with_underscores=test"},
		{zap.String("field.with.dots", "test2"), "field.with.dots=test2"},

		// Numeric variants
		{zap.Int32("int32_field", 42), "int32_field=42"},
		{zap.Int64("int64_field", 9999999), "int64_field=9999999"},
		{zap.Float32("float32_field", 3.14), "float32_field=3.14"},

		// Error fields
		{zap.Error(nil), ""}, // nil error shouldn't crash
		{zap.String("error", "something went wrong"), "error=something went wrong"},
	}

	var allFields []zapcore.Field
	for _, tf := range testFields {
		allFields = append(allFields, tf.field)
	}

	buf, err := encoder.EncodeEntry(entry, allFields)
	if err != nil {
		t.Fatalf("Failed to encode entry: %v", err)
	}

	cleanOutput := stripANSI(buf.String())

	for _, tf := range testFields {
		if tf.mustFind != "" && !strings.Contains(cleanOutput, tf.mustFind) {
			t.Errorf("Field was silently discarded from log output: %s\nClean output: %s",
				tf.mustFind, cleanOutput)
		}
	}
}

// TestMinimalEncoderFieldCount ensures that the NUMBER of fields in equals
// the number of fields that appear in the output (minus special formatting)
func TestMinimalEncoderFieldCount(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "test",
		Message:    "Field count test",
	}

	// Add exactly 10 unique fields
	fields := []zapcore.Field{
		zap.String("field1", "value1"),
		zap.String("field2", "value2"),
		zap.String("field3", "value3"),
		zap.String("field4", "value4"),
		zap.String("field5", "value5"),
		zap.Int("field6", 6),
		zap.Int("field7", 7),
		zap.Bool("field8", true),
		zap.Float64("field9", 9.9),
		zap.String("field10", "value10"),
	}

	buf, err := encoder.EncodeEntry(entry, fields)
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}

	output := buf.String()

	fieldCount := strings.Count(output, "field1=") +
		strings.Count(output, "field2=") +
		strings.Count(output, "field3=") +
		strings.Count(output, "field4=") +
		strings.Count(output, "field5=") +
		strings.Count(output, "field6=") +
		strings.Count(output, "field7=") +
		strings.Count(output, "field8=") +
		strings.Count(output, "field9=") +
		strings.Count(output, "field10=")

	if fieldCount != 10 {
		t.Errorf("Expected 10 fields in output, but found %d. Output: %s", fieldCount, output)
	}
}

// TestQueryLogging covers the exact field set the matcher emits per query.
func TestQueryLogging(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "fuzzmatch.match",
		Message:    "query matched",
	}

	fields := []zapcore.Field{
		zap.String("query", "appl"),
		zap.Int("candidates", 40),
		zap.Int("matches", 3),
		zap.Int64("duration_us", 112),
	}

	buf, err := encoder.EncodeEntry(entry, fields)
	if err != nil {
		t.Fatalf("Failed to encode query log: %v", err)
	}

	cleanOutput := stripANSI(buf.String())

	required := []string{
		"f.match",
		"query matched",
		"appl",
		"(3 of 40 candidates)",
		"112µs",
	}
	for _, want := range required {
		if !strings.Contains(cleanOutput, want) {
			t.Errorf("Query log missing %q\nFull output: %s", want, cleanOutput)
		}
	}
}

// TestUnknownFieldTypes tests that the encoder handles all possible field types
// without crashing or silently dropping them
func TestUnknownFieldTypes(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "test",
		Message:    "Testing unknown field types",
	}

	fields := []zapcore.Field{
		zap.Complex128("complex", complex(1.0, 2.0)),
		zap.Complex64("complex64", complex64(complex(3.0, 4.0))),
		zap.Duration("duration", 5*time.Second),
		zap.Time("timestamp", time.Now()),
		zap.Uint("uint", 100),
		zap.Uint8("uint8", 200),
		zap.Uint16("uint16", 30000),
		zap.Uint32("uint32", 4000000),
		zap.Uint64("uint64", 5000000000),
		zap.Uintptr("uintptr", 0xDEADBEEF),
		zap.ByteString("bytes", []byte("hello world")),
		zap.Binary("binary", []byte{0x01, 0x02, 0x03}),
	}

	buf, err := encoder.EncodeEntry(entry, fields)
	if err != nil {
		t.Fatalf("Failed to encode complex types: %v", err)
	}

	cleanOutput := stripANSI(buf.String())

	expectedSubstrings := []string{
		"complex",
		"complex64",
		"duration",
		"timestamp",
		"uint",
		"bytes",
		"binary",
	}

	for _, expected := range expectedSubstrings {
		if !strings.Contains(cleanOutput, expected) {
			t.Errorf("Field with key '%s' was completely dropped from output: %s", expected, cleanOutput)
		}
	}
}

func TestSetTheme(t *testing.T) {
	original := currentTheme
	defer SetTheme(original)

	SetTheme("gruvbox")
	if currentTheme != "gruvbox" {
		t.Errorf("SetTheme(gruvbox) left theme %q", currentTheme)
	}

	SetTheme("everforest")
	if currentTheme != "everforest" {
		t.Errorf("SetTheme(everforest) left theme %q", currentTheme)
	}

	SetTheme("neon-unknown")
	if currentTheme != "everforest" {
		t.Errorf("unknown theme must not change the current one, got %q", currentTheme)
	}
}

func TestAbbreviateName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"watch", "watch"},
		{"fuzzmatch.watch", "f.watch"},
		{"fuzzmatch.mcp.tools", "f.mcp.tools"},
	}
	for _, tt := range tests {
		if got := abbreviateName(tt.in); got != tt.want {
			t.Errorf("abbreviateName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWarnLevelRendersBadge(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:   zapcore.WarnLevel,
		Time:    time.Now(),
		Message: "corpus reload failed",
	}

	buf, err := encoder.EncodeEntry(entry, nil)
	if err != nil {
		t.Fatalf("Failed to encode warn entry: %v", err)
	}

	cleanOutput := stripANSI(buf.String())
	if !strings.Contains(cleanOutput, "WARN") {
		t.Errorf("warn entry missing level badge: %s", cleanOutput)
	}
}
