package raster

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ByLCY/bitpress/fonts"
	"github.com/ByLCY/bitpress/layout"
)

// RenderPages 并发绘制 pages 中的每一页，结果与 pages 顺序一致。
// 各页互不依赖，单页内部仍按行列顺序绘制。
func RenderPages(ctx context.Context, split layout.Split, pages []int, f *fonts.Font, opts layout.Options) ([]*Buffer, error) {
	if f == nil {
		return nil, fmt.Errorf("raster: 缺少字体")
	}
	out := make([]*Buffer, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, page := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = RasterizeLines(split, page, f, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// RenderBlock 绘制文本块需要输出的全部页面。
func RenderBlock(ctx context.Context, block layout.TextBlock) ([]*Buffer, error) {
	if block.Face == nil {
		return nil, fmt.Errorf("raster: 文本块 %q 未解析字体", block.Font)
	}
	return RenderPages(ctx, block.Split, block.PageNumbers(), block.Face, block.Options)
}
