package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yknishimuta/nlpo-toolkit/cleaner"
	"github.com/yknishimuta/nlpo-toolkit/config"
	"github.com/yknishimuta/nlpo-toolkit/entities/languages"
	f "github.com/yknishimuta/nlpo-toolkit/fetcher"
	l "github.com/yknishimuta/nlpo-toolkit/lexicon"
	r "github.com/yknishimuta/nlpo-toolkit/repository"
	"github.com/yknishimuta/nlpo-toolkit/wordlist"
)

type FetchOptionSet struct {
	Fetcher    f.Fetcher
	InitialSet f.FetchOptions
	UpdateSet  f.FetchOptions
}

var fetchOptionSets = []FetchOptionSet{
	{
		Fetcher: &f.LatinLibraryFetcher{},
		InitialSet: f.FetchOptions{
			MaxDepth:    5,
			Async:       true,
			Parallelism: 4,
		},
		UpdateSet: f.FetchOptions{
			MaxDepth:    3,
			Async:       true,
			Parallelism: 4,
		},
	},
}

var usage = "Usage: nlpo <build | clean | fetch | poplex> [config file | lexicon file]\n"

var defaultBuildConfig = "latin_wordlist.yml"
var defaultLexiconName = "Latin Comprehensive"

func main() {
	log := logrus.New()

	if len(os.Args) == 1 {
		os.Stderr.WriteString(usage)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "build":
		cfgPath := defaultBuildConfig
		if len(os.Args) > 2 {
			cfgPath = os.Args[2]
		}

		cfg, err := config.LoadBuildConfig(cfgPath)
		if err != nil {
			log.Fatal(err)
		}

		result, err := wordlist.Build(cfg.PipelineOptions())
		if err != nil {
			log.Fatal(err)
		}
		for _, warning := range result.Warnings {
			log.Warn(warning)
		}
		log.WithFields(logrus.Fields{
			"words":  len(result.Words),
			"output": cfg.Output.LatinWordlistOut,
		}).Info("wordlist written")

	case "clean":
		if len(os.Args) < 3 {
			os.Stderr.WriteString(usage)
			os.Exit(1)
		}

		cfg, err := config.LoadCleanConfig(os.Args[2])
		if err != nil {
			log.Fatal(err)
		}
		if err := cleaner.Run(cfg.Job(), log); err != nil {
			log.Fatal(err)
		}

	case "fetch":
		repo, err := r.GetRepository(r.RepositoryOptions{
			RestoreRequestHistory: false,
		})
		if err != nil {
			log.Fatal(err)
		}

		for _, fOpts := range fetchOptionSets {
			fOpts.Fetcher.SetFetcherOptions(&f.FetcherOptions{
				Repository: repo,
			})
		}

		mode := "update"

		for _, fOpts := range fetchOptionSets {
			var fetchOpts f.FetchOptions
			switch mode {
			case "update":
				fetchOpts = fOpts.UpdateSet
			case "initial":
				fetchOpts = fOpts.InitialSet
			default:
				continue
			}
			if err := fOpts.Fetcher.Fetch(fetchOpts); err != nil {
				log.Error(err)
			}
		}

	case "poplex":
		if len(os.Args) < 3 {
			os.Stderr.WriteString(usage)
			os.Exit(1)
		}

		repo, err := r.GetRepository(r.RepositoryOptions{
			RestoreRequestHistory: false,
		})
		if err != nil {
			log.Fatal(err)
		}

		lexicon := l.NewLatinLexicon(defaultLexiconName, languages.LA)
		if err := lexicon.LoadRepository(repo); err != nil {
			log.Fatal(err)
		}

		if lexicon.NumEntries() == 0 {
			lexemes, frequencies, err := loadLexemeFile(os.Args[2])
			if err != nil {
				log.Fatal(err)
			}
			if err := lexicon.AddLexemes(lexemes, frequencies); err != nil {
				log.Fatal(err)
			}
		}

		log.WithFields(logrus.Fields{
			"lexicon": defaultLexiconName,
			"entries": lexicon.NumEntries(),
		}).Info("lexicon populated")

	default:
		os.Stderr.WriteString(usage)
		os.Exit(1)
	}
}

// loadLexemeFile reads a lexicon seed file: "lexeme" or "lexeme frequency"
// per line. Plain wordlists (the build output) load with frequency 1.
func loadLexemeFile(path string) ([]string, []int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	lexemes := make([]string, 0)
	frequencies := make([]int, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		freq := 1
		if len(fields) > 1 {
			parsed, err := strconv.Atoi(fields[1])
			if err != nil {
				continue
			}
			freq = parsed
		}

		lexemes = append(lexemes, fields[0])
		frequencies = append(frequencies, freq)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return lexemes, frequencies, nil
}
