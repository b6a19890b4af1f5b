package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/go-github/v45/github"
	"github.com/pouriyajamshidi/pizzaconfig/internal/consts"
)

// PrintUsage prints how pizzaconfig should be run
func PrintUsage() {
	executableName := os.Args[0]

	consts.ColorLightCyan("\nPIZZACONFIG version %s\n\n", consts.Version)
	consts.ColorRed("Try running %s like:\n", executableName)
	consts.ColorRed("%s -name Margherita -base 8.0. For example:\n", executableName)
	consts.ColorRed("%s -set toppings -no-color\n", executableName)
	consts.ColorYellow("\n[optional flags]\n")

	fs, _ := newFlagSet()
	fs.VisitAll(func(f *flag.Flag) {
		flagName := f.Name
		if len(f.Name) > 1 {
			flagName = "-" + flagName
		}

		consts.ColorYellow("  -%s : %s\n", flagName, f.Usage)
	})
}

func compareVersions(v1, v2 string) int {
	parts1 := strings.Split(v1, ".")
	parts2 := strings.Split(v2, ".")

	for i := range min(len(parts1), len(parts2)) {
		n1, _ := strconv.Atoi(parts1[i])
		n2, _ := strconv.Atoi(parts2[i])

		if n1 < n2 {
			return -1
		}
		if n1 > n2 {
			return 1
		}
	}

	// for cases in which version numbers differ in length
	if len(parts1) < len(parts2) {
		return -1
	}

	if len(parts1) > len(parts2) {
		return 1
	}

	return 0
}

// PrintVersion displays the version
func PrintVersion() {
	consts.ColorGreen("PIZZACONFIG version %s\n", consts.Version)
}

var releaseTagPattern = regexp.MustCompile(`^v?(\d+\.\d+\.\d+)$`)

// ErrNoReleaseSource is returned by CheckForUpdates when the binary was built
// without a release repository.
var ErrNoReleaseSource = errors.New("no release repository configured for this build")

// CheckForUpdates checks for newer versions of pizzaconfig and returns update message
func CheckForUpdates() (string, error) {
	if consts.Owner == "" || consts.Repo == "" {
		return "", fmt.Errorf("check for updates: %w", ErrNoReleaseSource)
	}

	c := github.NewClient(nil)

	// unauthenticated requests from the same IP are limited to 60 per hour
	latestRelease, _, err := c.Repositories.GetLatestRelease(context.Background(), consts.Owner, consts.Repo)
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}

	return updateMessage(consts.Version, latestRelease.GetTagName())
}

// updateMessage compares the running version with the latest release tag
func updateMessage(current, latestTagName string) (string, error) {
	latestVersion := releaseTagPattern.FindStringSubmatch(latestTagName)

	if len(latestVersion) == 0 {
		return "", fmt.Errorf("version name does not match expected format: %s", latestTagName)
	}

	switch compareVersions(current, latestVersion[1]) {
	case -1:
		return fmt.Sprintf("Found newer version %s\nPlease update PIZZACONFIG from the URL below:\nhttps://github.com/%s/%s/releases/tag/%s",
			latestVersion[1], consts.Owner, consts.Repo, latestTagName), nil
	case 1:
		return fmt.Sprintf("Current version %s is newer than the latest release %s",
			current, latestVersion[1]), nil
	default:
		return fmt.Sprintf("PIZZACONFIG is on the latest version: %s", current), nil
	}
}
