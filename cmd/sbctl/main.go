// sbctl is a small demo CLI for the sponsorblock-go library. It fetches
// the classified segments for a video and prints them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	sponsorblock "github.com/segmentskip/sponsorblock-go"
)

func main() {
	var (
		videoID = flag.String("video", "", "video ID to fetch segments for (required)")
		baseURL = flag.String("base-url", getEnv("SPONSORBLOCK_BASE_URL", sponsorblock.BaseURLMain), "API base URL")
		service = flag.String("service", getEnv("SPONSORBLOCK_SERVICE", sponsorblock.DefaultService), "service the video belongs to")
		timeout = flag.Duration("timeout", 10*time.Second, "per-request timeout")
		private = flag.Bool("private", false, "use the privacy-preserving hash-prefix lookup")
		verbose = flag.Bool("v", false, "log API requests to stderr")
	)
	flag.Parse()

	if *videoID == "" {
		fmt.Fprintln(os.Stderr, "sbctl: -video is required")
		flag.Usage()
		os.Exit(2)
	}

	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().
			Level(zerolog.DebugLevel)
	}

	client, err := sponsorblock.New(
		getEnv("SPONSORBLOCK_USER_ID", ""),
		sponsorblock.WithBaseURL(*baseURL),
		sponsorblock.WithService(*service),
		sponsorblock.WithTimeout(*timeout),
		sponsorblock.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sbctl: %v\n", err)
		os.Exit(1)
	}

	fetch := client.FetchSegments
	if *private {
		fetch = client.FetchSegmentsPrivately
	}

	segments, err := fetch(context.Background(), *videoID, sponsorblock.AllCategories(), sponsorblock.AllActions())
	if err != nil {
		var clientErr *sponsorblock.ClientError
		if errors.As(err, &clientErr) && clientErr.Status == 404 {
			fmt.Println("no segments found")
			return
		}
		fmt.Fprintf(os.Stderr, "sbctl: %v\n", err)
		os.Exit(1)
	}

	for _, seg := range segments {
		printSegment(seg)
	}
}

func printSegment(seg sponsorblock.Segment) {
	locked := " "
	if seg.Locked {
		locked = "L"
	}
	switch seg.Action {
	case sponsorblock.ActionPointOfInterest:
		point, _ := seg.TimePoint()
		fmt.Printf("%-16s %-4s %s at %9.2fs            votes=%d\n",
			seg.Category, seg.Action, locked, point, seg.Votes)
	case sponsorblock.ActionFullVideo:
		fmt.Printf("%-16s %-4s %s (entire video)          votes=%d\n",
			seg.Category, seg.Action, locked, seg.Votes)
	default:
		section, _ := seg.TimeSection()
		fmt.Printf("%-16s %-4s %s %9.2fs - %9.2fs  votes=%d\n",
			seg.Category, seg.Action, locked, section.Start, section.End, seg.Votes)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
