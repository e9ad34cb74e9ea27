package report

import "testing"

func TestTreeString(t *testing.T) {
	tr := &Tree{charset: DefaultCharset()}
	if tr.String() != "" {
		t.Errorf("empty tree renders %q", tr.String())
	}

	a := tr.root.push("a")
	a1 := a.push("a1")
	a1.push("a1a")
	a1.push("a1b")
	a2 := a.push("a2")
	a2.push("a2a")
	a2.push("a2b")
	a2.push("a2c")
	tr.root.push("b")
	c := tr.root.push("c")
	c.push("c1")
	c.push("c2")
	c3 := c.push("c3")
	c3.push("c3a")
	c3.push("c3b")
	c3.push("c3c")

	want := `a
|-- a1
|   |-- a1a
|   ` + "`" + `-- a1b
` + "`" + `-- a2
    |-- a2a
    |-- a2b
    ` + "`" + `-- a2c
b
c
|-- c1
|-- c2
` + "`" + `-- c3
    |-- c3a
    |-- c3b
    ` + "`" + `-- c3c
`
	if got := tr.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestTreeStringUnicode(t *testing.T) {
	tr := &Tree{charset: DefaultCharset().WithUnicode()}
	a := tr.root.push("a")
	a.push("a1")
	a.push("a2")

	want := "a\n├── a1\n└── a2\n"
	if got := tr.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
