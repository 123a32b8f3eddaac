package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// MustGetEnvAsStrings splits a comma-separated variable, trimming spaces and dropping empty entries.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	return splitList(MustGetEnvAsString(ctx, name))
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	return mustParse(ctx, name, "int", MustGetEnvAsString(ctx, name), strconv.Atoi)
}

func MustGetEnvAsFloat(ctx context.Context, name string) float64 {
	return mustParse(ctx, name, "float", MustGetEnvAsString(ctx, name), parseFloat)
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	return mustParse(ctx, name, "boolean ('true'/'false')", MustGetEnvAsString(ctx, name), parseBoolean)
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	return mustParse(ctx, name, "duration", MustGetEnvAsString(ctx, name), time.ParseDuration)
}

func GetEnvAsStringOrDefault(name, def string) string {
	if s, exists := os.LookupEnv(name); exists && s != "" {
		return s
	}
	return def
}

func GetEnvAsIntOrDefault(ctx context.Context, name string, def int) int {
	return getOrDefault(ctx, name, def, MustGetEnvAsInt)
}

func GetEnvAsFloatOrDefault(ctx context.Context, name string, def float64) float64 {
	return getOrDefault(ctx, name, def, MustGetEnvAsFloat)
}

func GetEnvAsBooleanOrDefault(ctx context.Context, name string, def bool) bool {
	return getOrDefault(ctx, name, def, MustGetEnvAsBoolean)
}

func GetEnvAsDurationOrDefault(ctx context.Context, name string, def time.Duration) time.Duration {
	return getOrDefault(ctx, name, def, MustGetEnvAsDuration)
}

// getOrDefault returns def when the variable is unset or empty; a present but
// malformed value still panics.
func getOrDefault[T any](ctx context.Context, name string, def T, get func(context.Context, string) T) T {
	if s, exists := os.LookupEnv(name); !exists || s == "" {
		return def
	}
	return get(ctx, name)
}

func mustParse[T any](ctx context.Context, name, kind, s string, parse func(string) (T, error)) T {
	v, err := parse(strings.TrimSpace(s))
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as "+kind,
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as %s [%s]: %s", kind, name, s))
	}

	return v
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseBoolean(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q", s)
	}
}

func splitList(s string) []string {
	var values []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
