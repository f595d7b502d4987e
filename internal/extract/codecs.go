package extract

import (
	"slices"
	"strings"
)

var (
	videoCodecs = []string{
		"avc1", "avc2", "avc3", "avc4", "hvc1", "hev1", "hev2", "dvh1", "dvhe",
		"av01", "vp09", "vp9", "vp8", "mp4v", "h263", "h264", "theora",
	}
	audioCodecs = []string{
		"mp4a", "ac-3", "ec-3", "eac3", "opus", "vorbis", "mp3", "aac",
		"flac", "alac", "dtsc", "dtse", "dtsh", "dtsl",
	}
)

// parseCodecs splits an RFC 6381 CODECS attribute into its video and audio codec.
// When only one kind is present the other is reported as "none". An empty or
// unrecognised list leaves both empty: nothing was detected.
func parseCodecs(codecs string) (vcodec, acodec string) {
	for _, c := range strings.Split(codecs, ",") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		family, _, _ := strings.Cut(c, ".")
		family = strings.ToLower(family)

		switch {
		case vcodec == "" && slices.Contains(videoCodecs, family):
			vcodec = c
		case acodec == "" && slices.Contains(audioCodecs, family):
			acodec = c
		}
	}

	if vcodec == "" && acodec == "" {
		return "", ""
	}
	if vcodec == "" {
		vcodec = "none"
	}
	if acodec == "" {
		acodec = "none"
	}
	return vcodec, acodec
}
