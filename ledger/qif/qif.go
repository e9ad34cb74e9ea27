// Package qif decodes Quicken Interchange Format exports far enough to feed
// the import command: dates, amounts, payees, memos, and categories of
// non-investment transactions.
package qif

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

var ErrUnterminated = errors.New("unexpected end of input inside a transaction")

// Transaction is one non-investment QIF entry. All fields hold the raw text
// from the file; interpretation (date formats, amount parsing) is left to the
// caller.
type Transaction struct {
	// Account type from the preceding "!Type:" header, e.g. "Cash" or "Bank".
	Type string

	Date     string // D line
	Amount   string // T line, or U when present
	Payee    string // P line
	Memo     string // M lines, joined with newlines
	Category string // L line
}

// Decoder reads QIF transactions from an input stream.
type Decoder struct {
	sc          *bufio.Scanner
	currentType string
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{sc: bufio.NewScanner(r)}
}

// Next returns the next transaction, or io.EOF when the input is exhausted.
// Transactions start at a D line and run through the '^' terminator; header
// lines update the current account type, and anything else between
// transactions is skipped.
func (d *Decoder) Next() (Transaction, error) {
	for {
		line, err := d.readLine()
		if err != nil {
			return Transaction{}, err
		}
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "!Type:"):
			d.currentType = strings.TrimSpace(strings.TrimPrefix(line, "!Type:"))
		case line[0] == 'D':
			return d.finishTransaction(line)
		}
	}
}

// All decodes the remaining transactions.
func (d *Decoder) All() ([]Transaction, error) {
	var txs []Transaction
	for {
		tx, err := d.Next()
		if errors.Is(err, io.EOF) {
			return txs, nil
		}
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
}

func (d *Decoder) finishTransaction(dateLine string) (Transaction, error) {
	tx := Transaction{Type: d.currentType}
	tx.assign(dateLine)
	for {
		line, err := d.readLine()
		if errors.Is(err, io.EOF) {
			return Transaction{}, ErrUnterminated
		}
		if err != nil {
			return Transaction{}, err
		}
		if line != "" && line[0] == '^' {
			return tx, nil
		}
		tx.assign(line)
	}
}

func (tx *Transaction) assign(line string) {
	if line == "" {
		return
	}
	value := line[1:]
	switch line[0] {
	case 'D':
		tx.Date = value
	case 'T':
		if tx.Amount == "" {
			tx.Amount = value
		}
	case 'U':
		// Higher precision variant of T; always wins.
		tx.Amount = value
	case 'P':
		tx.Payee = value
	case 'M':
		if tx.Memo == "" {
			tx.Memo = value
		} else {
			tx.Memo += "\n" + value
		}
	case 'L':
		tx.Category = value
	}
}

func (d *Decoder) readLine() (string, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(d.sc.Text(), "\r"), nil
}
