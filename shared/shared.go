package shared

import (
	"starlight/shared/constant"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// KeySeparator joins the segments of keys built by BuildKey.
const KeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == constant.Empty {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// BuildKey joins a namespace and its parts into a storage key. Empty parts
// are skipped.
func BuildKey(namespace string, parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, namespace)

	for _, part := range parts {
		if part == constant.Empty {
			continue
		}

		segments = append(segments, part)
	}

	return strings.Join(segments, KeySeparator)
}

// TrimFields returns a copy of fields with every value trimmed of surrounding
// whitespace.
func TrimFields(fields map[string]string) map[string]string {
	trimmed := make(map[string]string, len(fields))
	for key, value := range fields {
		trimmed[key] = strings.TrimSpace(value)
	}

	return trimmed
}
