package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/google/renameio/v2"
	"github.com/jjudge-oj/accountseed/types"
)

const defaultFileMode os.FileMode = 0o644

var utf8BOM = []byte("\xef\xbb\xbf")

// accountColumns lists the schema columns in the order they are written.
var accountColumns = []string{"email", "username", "password", "displayedName", "role"}

// requiredColumns must be present in the header of every account file.
var requiredColumns = []string{"email", "username"}

// accountRow is the on-disk shape of an account. Field order defines the
// column order of written files.
type accountRow struct {
	Email         string `csv:"email"`
	Username      string `csv:"username"`
	Password      string `csv:"password"`
	DisplayedName string `csv:"displayedName"`
	Role          string `csv:"role"`
}

// AccountRepository reads and writes account CSV files.
type AccountRepository struct {
	encoding types.RoleEncoding
}

func NewAccountRepository(encoding types.RoleEncoding) *AccountRepository {
	return &AccountRepository{encoding: encoding}
}

// Load reads every account in the file at path, in file order.
// The file is read in full and closed before Load returns.
func (r *AccountRepository) Load(ctx context.Context, path string) ([]types.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	records, err := readRecords(bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		return nil, err
	}
	if len(records.rows) == 0 {
		return nil, &ParseError{Err: errors.New("missing header row")}
	}
	header, err := schemaHeader(records.rows[0])
	if err != nil {
		return nil, err
	}
	records.rows[0] = header

	var rows []*accountRow
	if err := gocsv.UnmarshalCSV(records, &rows); err != nil {
		return nil, &ParseError{Err: err}
	}

	accounts := make([]types.Account, 0, len(rows))
	for i, row := range rows {
		account := types.Account{
			Email:         row.Email,
			Username:      row.Username,
			DisplayedName: row.DisplayedName,
			Role:          types.RoleUnset,
		}
		if row.Role != "" {
			role, err := r.encoding.Decode(row.Role)
			if err != nil {
				return nil, &ParseError{Line: records.lines[i+1], Record: i + 1, Column: "role", Err: err}
			}
			account.Role = role
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// Save atomically replaces the file at path with the given accounts,
// header included. The existing file keeps its permissions and is left
// untouched on any failure.
func (r *AccountRepository) Save(ctx context.Context, path string, accounts []types.Account) error {
	rows := make([]*accountRow, 0, len(accounts))
	for i, account := range accounts {
		role, err := r.encoding.Encode(account.Role)
		if err != nil {
			return fmt.Errorf("%w: record %d: %w", ErrSerialization, i+1, err)
		}
		rows = append(rows, &accountRow{
			Email:         account.Email,
			Username:      account.Username,
			Password:      account.Password,
			DisplayedName: account.DisplayedName,
			Role:          role,
		})
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := renameio.WriteFile(path, buf.Bytes(), defaultFileMode, renameio.WithExistingPermissions()); err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return nil
}

// schemaHeader validates header against the schema and returns a copy in
// which every cell that is not an exact schema column name is blanked, so
// gocsv only binds exactly named columns.
func schemaHeader(header []string) ([]string, error) {
	known := make(map[string]bool, len(accountColumns))
	for _, name := range accountColumns {
		known[name] = true
	}

	masked := make([]string, len(header))
	present := make(map[string]bool, len(header))
	for i, name := range header {
		if !known[name] {
			continue
		}
		if present[name] {
			return nil, &ParseError{Line: 1, Column: name, Err: errors.New("duplicate column")}
		}
		present[name] = true
		masked[i] = name
	}

	for _, name := range requiredColumns {
		if !present[name] {
			return nil, &ParseError{Line: 1, Column: name, Err: errors.New("required column missing")}
		}
	}
	return masked, nil
}

// recordSet holds parsed CSV records with the file line each one starts
// on. It replays the records to gocsv as a gocsv.CSVReader.
type recordSet struct {
	rows  [][]string
	lines []int
	next  int
}

func readRecords(data []byte) (*recordSet, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	set := &recordSet{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return set, nil
		}
		if err != nil {
			return nil, newParseError(err)
		}
		line, _ := reader.FieldPos(0)
		set.rows = append(set.rows, record)
		set.lines = append(set.lines, line)
	}
}

func (s *recordSet) Read() ([]string, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}
	record := s.rows[s.next]
	s.next++
	return record, nil
}

func (s *recordSet) ReadAll() ([][]string, error) {
	rest := s.rows[s.next:]
	s.next = len(s.rows)
	return rest, nil
}

func newParseError(err error) *ParseError {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ParseError{Err: err}
}
