// Package images implements the responsive image engine of the Flatlayer SDK:
// parsing CSS-like size descriptors into breakpoint maps, generating
// descending srcset candidate ladders with aspect-ratio preservation, building
// image transformation URLs, and assembling complete <img> attribute sets.
//
// Everything in this package is a pure function over immutable inputs. There
// is no I/O, no shared mutable state and no logging, so every operation is
// safe to call concurrently without locking.
//
// # Size descriptors
//
// Size descriptors are the human-authored strings declaring how wide an image
// renders at each breakpoint:
//
//	bm, err := images.ParseSizeDescriptors(
//	    []string{"100vw", "md:50vw", "lg:calc(33vw - 16px)"}, nil)
//	if err != nil {
//	    // one of the tokens matched no grammar
//	}
//	sizes := bm.SizesAttribute()
//	// "(min-width: 1024px) calc(33vw - 16px), (min-width: 768px) 50vw, 100vw"
//
// Three grammars are supported: "<n>vw", "<n>px" and "calc(<n>vw - <m>px)".
// Values are non-negative integers; fractional values are rejected rather
// than rounded.
//
// # Srcset generation
//
// Fluid generation (the default) ladders down from the starting width by a
// fixed decay factor until the minimum floor:
//
//	srcset := images.GenerateSrcset(1600, 900, nil, urlFor)
//	// "...1600w, ...1440w, ...1296w, ..." down to the 100px floor
//
// Fixed generation offers only the exact target and a 2x retina variant:
//
//	opts := &images.Options{Width: 400, Height: 300, Fixed: true}
//	srcset := images.GenerateSrcset(1600, 1200, opts, urlFor)
//	// "...800w, ...400w"
//
// # Attribute assembly
//
// Assembler ties the stages together with the endpoint and default transform
// configuration:
//
//	a := images.Assembler{
//	    Endpoint: "https://cms.example.com/image",
//	    Defaults: images.Transform{"q": 80},
//	}
//	attrs, err := a.Attributes(img, []string{"100vw", "md:50vw"}, nil, nil)
package images
