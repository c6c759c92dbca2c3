package repository

import (
	"database/sql"
	"net/url"
	"strconv"
	"sync"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yknishimuta/nlpo-toolkit/content"
)

// Repository persists fetched corpus texts and lexicons. It also
// implements colly's Storage interface so the fetcher's request history
// and cookies survive restarts.
type Repository interface {
	SaveContent(c *content.FetchedContent) error
	GetFetchedContent(id int) (*content.FetchedContent, error)

	AddLexeme(name, language, lexeme string, frequency int) error
	AddLexemes(name, language string, lexemes []string, frequencies []int) error
	GetLexemes(name, language string) ([]string, []int, error)

	Init() error
	Visited(requestID uint64) error
	IsVisited(requestID uint64) (bool, error)
	Cookies(u *url.URL) string
	SetCookies(u *url.URL, cookies string)
}

type RepositoryOptions struct {
	ConnInfo              string
	RestoreRequestHistory bool
	EnableCookies         bool
}

type repository struct {
	db      *sql.DB
	Options RepositoryOptions
	log     *logrus.Logger
}

var repo *repository
var repoErr error
var once sync.Once

var defaultConnInfo = "user=nlpo dbname=nlpo sslmode=disable"

// GetRepository opens (once per process) the backing database and
// prepares the schema.
func GetRepository(options RepositoryOptions) (Repository, error) {
	once.Do(func() {
		var initErr error
		connInfo := options.ConnInfo
		if connInfo == "" {
			connInfo = defaultConnInfo
		}

		r := &repository{
			Options: options,
			log:     logrus.New(),
		}
		r.db, initErr = sql.Open("postgres", connInfo)
		if initErr != nil {
			repoErr = errors.Wrap(initErr, "repository: open database")
			return
		}
		if initErr = r.db.Ping(); initErr != nil {
			repoErr = errors.Wrap(initErr, "repository: open database")
			return
		}

		r.db.SetMaxOpenConns(50)
		r.db.SetMaxIdleConns(0)

		if initErr = initDatabase(r.db, options.RestoreRequestHistory); initErr != nil {
			repoErr = initErr
			return
		}
		repo = r
	})

	if repo == nil {
		return nil, repoErr
	}
	return repo, nil
}

func initDatabase(db *sql.DB, restoreRequestHistory bool) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS original_content (id SERIAL PRIMARY KEY, title VARCHAR NOT NULL, author VARCHAR, body TEXT NOT NULL, canon_name VARCHAR, uri VARCHAR UNIQUE NOT NULL, language VARCHAR)",
		"CREATE TABLE IF NOT EXISTS lexicons (name VARCHAR NOT NULL, language VARCHAR NOT NULL, lexeme VARCHAR NOT NULL, frequency INTEGER NOT NULL DEFAULT 0, unique(name, language, lexeme))",
	}
	if !restoreRequestHistory {
		stmts = append(stmts,
			"DROP TABLE IF EXISTS request_history",
			"DROP TABLE IF EXISTS cookie_history",
		)
	}
	stmts = append(stmts,
		"CREATE TABLE IF NOT EXISTS request_history (requestId VARCHAR)",
		"CREATE UNIQUE INDEX IF NOT EXISTS requestId_idx ON request_history(requestId)",
		"CREATE TABLE IF NOT EXISTS cookie_history (host VARCHAR, cookies VARCHAR)",
		"CREATE UNIQUE INDEX IF NOT EXISTS host_idx ON cookie_history(host)",
	)

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return errors.Wrap(err, "repository: init schema")
		}
	}
	return nil
}

func (r *repository) SaveContent(c *content.FetchedContent) error {
	var lastContentId int
	err := r.db.QueryRow(
		"INSERT INTO original_content (title, author, body, canon_name, uri, language) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT DO NOTHING RETURNING id",
		c.Title, c.Author, c.Body, c.CanonName, c.Uri, c.Language,
	).Scan(&lastContentId)
	if err != nil {
		if err == sql.ErrNoRows { // content saved already
			return nil
		}
		return errors.Wrap(err, "repository: save content")
	}

	c.Id = lastContentId
	return nil
}

func (r *repository) GetFetchedContent(id int) (*content.FetchedContent, error) {
	c := &content.FetchedContent{}
	err := r.db.QueryRow(
		"SELECT id, title, author, body, canon_name, uri, language FROM original_content WHERE id = $1", id,
	).Scan(&c.Id, &c.Title, &c.Author, &c.Body, &c.CanonName, &c.Uri, &c.Language)
	if err != nil {
		return nil, errors.Wrapf(err, "repository: get content %d", id)
	}
	return c, nil
}

func (r *repository) AddLexeme(name, language, lexeme string, frequency int) error {
	_, err := r.db.Exec(
		"INSERT INTO lexicons (name, language, lexeme, frequency) VALUES ($1, $2, $3, $4) ON CONFLICT (name, language, lexeme) DO UPDATE SET frequency = EXCLUDED.frequency",
		name, language, lexeme, frequency,
	)
	return errors.Wrap(err, "repository: add lexeme")
}

func (r *repository) AddLexemes(name, language string, lexemes []string, frequencies []int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return errors.Wrap(err, "repository: add lexemes")
	}

	stmt, err := tx.Prepare(
		"INSERT INTO lexicons (name, language, lexeme, frequency) VALUES ($1, $2, $3, $4) ON CONFLICT (name, language, lexeme) DO UPDATE SET frequency = EXCLUDED.frequency")
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "repository: add lexemes")
	}
	defer stmt.Close()

	for i, lexeme := range lexemes {
		if i >= len(frequencies) {
			break
		}
		if _, err := stmt.Exec(name, language, lexeme, frequencies[i]); err != nil {
			tx.Rollback()
			return errors.Wrap(err, "repository: add lexemes")
		}
	}

	return errors.Wrap(tx.Commit(), "repository: add lexemes")
}

func (r *repository) GetLexemes(name, language string) ([]string, []int, error) {
	rows, err := r.db.Query(
		"SELECT lexeme, frequency FROM lexicons WHERE name = $1 AND language = $2", name, language)
	if err != nil {
		return nil, nil, errors.Wrap(err, "repository: get lexemes")
	}
	defer rows.Close()

	lexemes := []string{}
	frequencies := []int{}
	for rows.Next() {
		var lexeme string
		var frequency int
		if err := rows.Scan(&lexeme, &frequency); err != nil {
			return nil, nil, errors.Wrap(err, "repository: get lexemes")
		}
		lexemes = append(lexemes, lexeme)
		frequencies = append(frequencies, frequency)
	}

	return lexemes, frequencies, errors.Wrap(rows.Err(), "repository: get lexemes")
}

// Below is this repository's implementation of colly's Storage interface

func (r *repository) Init() error {
	return nil
}

func (r *repository) Visited(requestId uint64) error {
	// Go's sql package doesn't support insertion of uint64s
	requestIdString := strconv.FormatUint(requestId, 10)
	_, err := r.db.Exec("INSERT INTO request_history (requestId) VALUES ($1) ON CONFLICT DO NOTHING", requestIdString)
	return err
}

func (r *repository) IsVisited(requestId uint64) (bool, error) {
	requestIdString := strconv.FormatUint(requestId, 10)
	var destRequest string

	err := r.db.QueryRow("SELECT requestId FROM request_history WHERE requestId = $1", requestIdString).Scan(&destRequest)
	if err == sql.ErrNoRows {
		return false, nil
	} else if err != nil {
		r.log.WithError(err).Error("repository: request history lookup")
		return false, err
	}

	return true, nil
}

func (r *repository) Cookies(u *url.URL) string {
	if !r.Options.EnableCookies {
		return ""
	}

	var cookies string
	err := r.db.QueryRow("SELECT cookies FROM cookie_history WHERE host = $1", u.Hostname()).Scan(&cookies)
	if err != nil {
		if err != sql.ErrNoRows {
			r.log.WithError(err).Error("repository: cookie lookup")
		}
		return ""
	}

	return cookies
}

func (r *repository) SetCookies(u *url.URL, cookies string) {
	if !r.Options.EnableCookies {
		return
	}

	_, err := r.db.Exec("INSERT INTO cookie_history (host, cookies) VALUES ($1, $2) ON CONFLICT DO NOTHING", u.Hostname(), cookies)
	if err != nil {
		r.log.WithError(err).Error("repository: cookie store")
	}
}
