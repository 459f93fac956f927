package mock

import (
	"context"

	"github.com/fwojciec/slidezone"
)

var _ slidezone.SlideParser = (*SlideParser)(nil)

// SlideParser is a mock implementation of slidezone.SlideParser.
type SlideParser struct {
	ParseSlideFn func(ctx context.Context, path string, zones slidezone.Zones) (slidezone.SlideContent, error)
}

func (p *SlideParser) ParseSlide(ctx context.Context, path string, zones slidezone.Zones) (slidezone.SlideContent, error) {
	return p.ParseSlideFn(ctx, path, zones)
}

var _ slidezone.ContentFormatter = (*ContentFormatter)(nil)

// ContentFormatter is a mock implementation of slidezone.ContentFormatter.
type ContentFormatter struct {
	FormatContentFn func(content slidezone.SlideContent) any
}

func (f *ContentFormatter) FormatContent(content slidezone.SlideContent) any {
	return f.FormatContentFn(content)
}
