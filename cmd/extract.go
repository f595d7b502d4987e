package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"appledev/internal/logging"
	"appledev/internal/media"
	"appledev/internal/provider"
	"appledev/internal/subtitle"
	"appledev/internal/ui"
)

// extractRun is the default command: appledev <url>
func extractRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rawURL, err := targetURL(ctx, args, ui.Input)
	if err != nil {
		return err
	}

	p := newProvider()
	res, err := p.Extract(ctx, rawURL)
	if err != nil {
		return err
	}

	if flagPick && res.Type == media.Playlist {
		res, err = pick(ctx, p, res.Playlist)
		if err != nil {
			return err
		}
	}
	if flagResolve {
		if err := provider.ResolvePending(ctx, p, res); err != nil {
			return err
		}
	}

	if flagNoSubs {
		dropSubtitles(res)
	} else if cfg.SubsLanguage != "" {
		subtitle.Apply(res, cfg.SubsLanguage)
	}

	r := newRenderer(cmd.OutOrStdout())
	if !flagNoSubs {
		r.language = cfg.SubsLanguage
	}
	if flagJSON {
		return r.json(infoDict(res))
	}
	r.result(res)
	return nil
}

// targetURL returns the URL argument, or prompts for one when none was given.
func targetURL(ctx context.Context, args []string, input func(context.Context, string) (string, error)) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	rawURL, err := input(ctx, "URL")
	if errors.Is(err, ui.ErrCancelled) {
		return "", fmt.Errorf("no URL provided")
	}
	if err != nil {
		return "", fmt.Errorf("prompting for URL: %w", err)
	}
	return rawURL, nil
}

// pick lets the user choose one playlist item and extracts it if still pending.
func pick(ctx context.Context, p provider.Provider, pl *media.PlaylistResult) (*media.Result, error) {
	if len(pl.Entries) == 0 {
		return nil, fmt.Errorf("playlist %q is empty", pl.ID)
	}

	labels := make([]string, len(pl.Entries))
	for i, it := range pl.Entries {
		labels[i] = itemLabel(it)
	}

	idx, err := ui.Select(ctx, pl.Title, labels)
	if err != nil {
		return nil, err
	}

	it := pl.Entries[idx]
	logging.Debug("picked playlist item", "index", idx, "label", labels[idx])
	if !it.Pending() {
		return media.VideoResult(it.Entry), nil
	}
	return p.Extract(ctx, it.URL)
}

func itemLabel(it media.Item) string {
	if it.Pending() {
		return it.URL
	}
	return it.Entry.Title
}

func dropSubtitles(res *media.Result) {
	switch res.Type {
	case media.Video:
		res.Entry.Subtitles = nil
	case media.Playlist:
		for _, it := range res.Playlist.Entries {
			if it.Entry != nil {
				it.Entry.Subtitles = nil
			}
		}
	}
}
