package images

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testImage = Image{
	ID:        "42",
	Filename:  "hero-banner.jpg",
	Extension: "jpg",
	Width:     1600,
	Height:    900,
	Alt:       "A hero banner",
}

func testAssembler() Assembler {
	return Assembler{
		Endpoint: "https://cms.example.com/image",
		Defaults: Transform{"q": 80},
	}
}

func TestAttributes(t *testing.T) {
	a := testAssembler()
	attrs, err := a.Attributes(testImage, []string{"100vw", "md:50vw"}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://cms.example.com/image/42.jpg?q=80", attrs["src"])
	assert.Equal(t, "A hero banner", attrs["alt"])
	assert.Equal(t, "(min-width: 768px) 50vw, 100vw", attrs["sizes"])
	assert.Equal(t, "1600", attrs["width"])
	assert.Equal(t, "900", attrs["height"])

	require.NotEmpty(t, attrs["srcset"])
	entries := strings.Split(attrs["srcset"], ", ")
	assert.True(t, strings.HasSuffix(entries[0], " 1600w"))
	for _, e := range entries {
		assert.Contains(t, e, "q=80")
	}
}

func TestAttributesTargetDimensionsWin(t *testing.T) {
	a := testAssembler()
	attrs, err := a.Attributes(testImage, []string{"100vw"}, nil, &Options{Width: 400, Height: 300})
	require.NoError(t, err)
	assert.Equal(t, "400", attrs["width"])
	assert.Equal(t, "300", attrs["height"])
}

func TestAttributesHTMLOverridesWinLast(t *testing.T) {
	a := testAssembler()
	attrs, err := a.Attributes(testImage, []string{"100vw"}, map[string]string{
		"alt":     "overridden",
		"loading": "lazy",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "overridden", attrs["alt"])
	assert.Equal(t, "lazy", attrs["loading"])
}

func TestAttributesParseFailurePropagates(t *testing.T) {
	a := testAssembler()
	attrs, err := a.Attributes(testImage, []string{"10em"}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSizeFormat)
	assert.Nil(t, attrs)
}

func TestAttributesFormatOverride(t *testing.T) {
	a := testAssembler()
	attrs, err := a.Attributes(testImage, []string{"100vw"}, nil, &Options{
		Transform: Transform{"fm": "webp"},
	})
	require.NoError(t, err)
	assert.Contains(t, attrs["src"], "/42.webp?")
	assert.Contains(t, attrs["src"], "fm=webp")
}

func TestAttributesUnknownDimensions(t *testing.T) {
	a := testAssembler()
	img := Image{ID: "7", Extension: "png"}
	attrs, err := a.Attributes(img, nil, nil, nil)
	require.NoError(t, err)
	assert.NotContains(t, attrs, "width")
	assert.NotContains(t, attrs, "height")
	assert.NotContains(t, attrs, "sizes")
	assert.Equal(t, "https://cms.example.com/image/7.png?q=80", attrs["srcset"],
		"unknown width yields a single unconstrained srcset entry")
}

func TestAltTextResolution(t *testing.T) {
	tests := []struct {
		name string
		img  Image
		want string
	}{
		{
			name: "explicit metadata",
			img:  Image{Alt: "Sunset over the bay", Filename: "img_0231.jpg"},
			want: "Sunset over the bay",
		},
		{
			name: "filename derived",
			img:  Image{Filename: "hero-image_final.jpg"},
			want: "hero image final",
		},
		{
			name: "nested path filename",
			img:  Image{Filename: "uploads/2024/team-photo.png"},
			want: "team photo",
		},
		{
			name: "generic fallback",
			img:  Image{},
			want: "Image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, altText(tt.img))
		})
	}
}

func TestAssemblerURL(t *testing.T) {
	a := testAssembler()
	assert.Equal(t, "https://cms.example.com/image/42.jpg?q=80", a.URL(testImage, nil))
	assert.Equal(t, "https://cms.example.com/image/42.webp?fm=webp&q=90",
		a.URL(testImage, Transform{"q": 90, "fm": "webp"}))
}
