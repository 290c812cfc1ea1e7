package vanilla

import (
	"path"
	"strconv"
	"strings"
)

func controlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "sg-" + strings.ReplaceAll(trimmed, "_", "-")
}

func helpID(name string) string {
	id := controlID(name)
	if id == "" {
		return ""
	}
	return id + "-help"
}

// imageURL joins a relative gallery path onto prefix. Absolute paths and
// URLs pass through unchanged.
func imageURL(prefix, image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "/") || strings.Contains(image, "://") {
		return image
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "/" + image
	}
	return path.Join("/", prefix, image)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
