package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is a single dated entry: an amount attributed to a category, with an
// optional free-form note. Records are immutable once constructed.
type Record struct {
	date     Date
	category Category
	amount   Cents
	note     string
}

func NewRecord(date Date, category Category, amount Cents, note string) Record {
	return Record{
		date:     date,
		category: category,
		amount:   amount,
		note:     note,
	}
}

func (r Record) Date() Date         { return r.date }
func (r Record) Category() Category { return r.category }
func (r Record) Amount() Cents      { return r.amount }
func (r Record) Note() string       { return r.note }

// jsonRecord is the wire form. Amounts are raw cents, so they are always JSON
// integers.
type jsonRecord struct {
	Date     Date     `json:"d"`
	Category Category `json:"c"`
	Amount   Cents    `json:"a"`
	Note     string   `json:"n,omitempty"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonRecord{
		Date:     r.date,
		Category: r.category,
		Amount:   r.amount,
		Note:     r.note,
	})
}

func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var jr jsonRecord
	if err := dec.Decode(&jr); err != nil {
		return err
	}
	if jr.Date == (Date{}) {
		return fmt.Errorf("record %s: missing date", data)
	}
	if jr.Category == (Category{}) {
		return fmt.Errorf("record %s: missing category", data)
	}
	*r = Record{
		date:     jr.Date,
		category: jr.Category,
		amount:   jr.Amount,
		note:     jr.Note,
	}
	return nil
}

// String formats r as a single line of JSON.
func (r Record) String() string {
	b, err := json.Marshal(r)
	if err != nil {
		// Marshaling cannot fail for a valid record.
		panic(err)
	}
	return string(b)
}

// ParseRecord parses a record from its JSON representation.
func ParseRecord(s string) (Record, error) {
	var r Record
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		return Record{}, err
	}
	return r, nil
}
