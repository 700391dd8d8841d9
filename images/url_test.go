package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name      string
		endpoint  string
		id        string
		ext       string
		defaults  Transform
		overrides Transform
		width     int
		height    int
		want      string
	}{
		{
			name:     "no parameters omits the query entirely",
			endpoint: "https://cms.example.com/image",
			id:       "42",
			ext:      "jpg",
			want:     "https://cms.example.com/image/42.jpg",
		},
		{
			name:      "override wins over default",
			endpoint:  "https://cms.example.com/image",
			id:        "42",
			ext:       "jpg",
			defaults:  Transform{"q": 80},
			overrides: Transform{"q": 90, "w": 500},
			want:      "https://cms.example.com/image/42.jpg?q=90&w=500",
		},
		{
			name:      "candidate dimensions win over both maps",
			endpoint:  "https://cms.example.com/image",
			id:        "42",
			ext:       "webp",
			defaults:  Transform{"w": 9999},
			overrides: Transform{"h": 9999},
			width:     640,
			height:    480,
			want:      "https://cms.example.com/image/42.webp?h=480&w=640",
		},
		{
			name:     "zero dimensions leave map values alone",
			endpoint: "https://cms.example.com/image",
			id:       "42",
			ext:      "jpg",
			defaults: Transform{"w": 320},
			want:     "https://cms.example.com/image/42.jpg?w=320",
		},
		{
			name:     "trailing endpoint slash is trimmed",
			endpoint: "https://cms.example.com/image/",
			id:       "42",
			ext:      "jpg",
			width:    100,
			want:     "https://cms.example.com/image/42.jpg?w=100",
		},
		{
			name:      "passthrough keys and value types",
			endpoint:  "https://cms.example.com/image",
			id:        "42",
			ext:       "jpg",
			defaults:  Transform{"blur": 2.5},
			overrides: Transform{"crop": "fill"},
			want:      "https://cms.example.com/image/42.jpg?blur=2.5&crop=fill",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildURL(tt.endpoint, tt.id, tt.ext, tt.defaults, tt.overrides, tt.width, tt.height)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildURLStableOrdering(t *testing.T) {
	first := BuildURL("e", "1", "jpg", Transform{"q": 80, "fit": "crop"}, Transform{"blur": 3}, 200, 100)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, BuildURL("e", "1", "jpg", Transform{"q": 80, "fit": "crop"}, Transform{"blur": 3}, 200, 100))
	}
}

func TestBuildURLNeverLeaksDefault(t *testing.T) {
	got := BuildURL("e", "1", "jpg", Transform{"q": 80}, Transform{"q": 90, "w": 500}, 0, 0)
	assert.Contains(t, got, "q=90")
	assert.Contains(t, got, "w=500")
	assert.NotContains(t, got, "q=80")
}

func TestTransformMerge(t *testing.T) {
	base := Transform{"q": 80, "fm": "webp"}
	merged := base.Merge(Transform{"q": 90})
	assert.Equal(t, Transform{"q": 90, "fm": "webp"}, merged)
	assert.Equal(t, Transform{"q": 80, "fm": "webp"}, base, "merge must not mutate the receiver")

	assert.Equal(t, Transform{}, Transform(nil).Merge(nil))
}
