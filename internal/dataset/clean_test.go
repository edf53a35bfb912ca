package dataset

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var cleanHeader = []string{
	"Name", "Platform", "Year_of_Release", "Genre", "Publisher",
	"NA_Sales", "EU_Sales", "JP_Sales", "Other_Sales", "Global_Sales",
	"User_Score", "Developer",
}

// row builds a raw row in cleanHeader order.
func row(name, platform, year, genre, publisher, na, eu, jp, other, global, user, developer string) []string {
	return []string{name, platform, year, genre, publisher, na, eu, jp, other, global, user, developer}
}

func TestClean(t *testing.T) {
	raw := NewRawTable(cleanHeader, [][]string{
		row(" Gran Turismo ", "PS", "1997", "Racing", "Sony Computer Entertainment", "4.02", "3.87", "2.54", "0.52", "10.95", "8.7", "Polyphony Digital"),
		row("Halo 3", "X360", "2007", "Shooter", "Microsoft", "7.97", "2.81", "0.13", "1.21", "12.12", "7.8", "Bungie"),
		row("Madden NFL 2004", "PS2", "N/A", "Sports", "Electronic Arts", "4.26", "0.26", "0.01", "0.71", "5.23", "8.5", "EA Tiburon"),
		row("Obscure", "PSP", "2006", "Puzzle", "N/A", "0.1", "", "", "", "0.1", "tbd", ""),
		row("No Sales", "PS3", "2010", "Action", "Ubisoft", "", "", "", "", "", "", "Ubisoft"),
		row("Lowercase", "ps4", "2015", "Action", "Sony", "1", "1", "1", "1", "4", "7", "Sony"),
	})

	got, stats := CleanWithStats(raw)

	want := &Table{Records: []Record{
		{
			Name: "Gran Turismo", Platform: "PS", Genre: "Racing",
			Publisher: "Sony Computer Entertainment", Developer: "Polyphony Digital",
			YearOfRelease: Num(1997), UserScore: Num(8.7),
			NASales: Num(4.02), EUSales: Num(3.87), JPSales: Num(2.54), OtherSales: Num(0.52),
			GlobalSales: Num(10.95),
		},
		{
			Name: "Obscure", Platform: "PSP", Genre: "Puzzle",
			Publisher: "nan", Developer: "nan",
			YearOfRelease: Num(2006), UserScore: Null(),
			NASales: Num(0.1), EUSales: Null(), JPSales: Null(), OtherSales: Null(),
			GlobalSales: Num(0.1),
		},
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Clean() mismatch (-want +got):\n%s", diff)
	}

	wantStats := CleanStats{Total: 6, MissingRequired: 2, OtherPlatform: 2, Retained: 2}
	if stats != wantStats {
		t.Errorf("stats = %+v, want %+v", stats, wantStats)
	}
}

func TestClean_Invariants(t *testing.T) {
	raw := NewRawTable(cleanHeader, [][]string{
		row("A", "PS2", "2001", "Action", "P", "1", "1", "1", "1", "4", "8", "D"),
		row("B", "Wii", "2008", "Sports", "P", "1", "1", "1", "1", "4", "8", "D"),
		row("C", "PS3", "", "Action", "P", "1", "1", "1", "1", "4", "8", "D"),
		row("D", "PSV", "2012", "Action", "P", "1", "1", "1", "1", "oops", "8", "D"),
		row("E", "", "2012", "Action", "P", "1", "1", "1", "1", "2", "8", "D"),
		row("F", "N/A", "2012", "Action", "P", "1", "1", "1", "1", "2", "8", "D"),
		row("G", " PS4 ", "2014", "Action", "P", "1", "1", "1", "1", "2", "8", "D"),
	})

	got := Clean(raw)
	for _, rec := range got.Records {
		if !rec.YearOfRelease.Valid {
			t.Errorf("%s: null Year_of_Release retained", rec.Name)
		}
		if !rec.GlobalSales.Valid {
			t.Errorf("%s: null Global_Sales retained", rec.Name)
		}
		if !strings.HasPrefix(rec.Platform, "PS") {
			t.Errorf("%s: platform %q retained", rec.Name, rec.Platform)
		}
	}

	var names []string
	for _, rec := range got.Records {
		names = append(names, rec.Name)
	}
	if diff := cmp.Diff([]string{"A", "G"}, names); diff != "" {
		t.Errorf("retained names mismatch (-want +got):\n%s", diff)
	}
}

func TestClean_DropsNonPlayStation(t *testing.T) {
	raw := NewRawTable(cleanHeader, [][]string{
		row("Halo 2", "Xbox", "2004", "Shooter", "Microsoft", "6.82", "1.53", "0.05", "0.08", "8.49", "9", "Bungie"),
	})

	if got := Clean(raw); got.Len() != 0 {
		t.Errorf("Clean() retained %d rows, want 0: %+v", got.Len(), got.Records)
	}
}

func TestClean_DropsUnparseableYear(t *testing.T) {
	raw := NewRawTable(cleanHeader, [][]string{
		row("Tekken 3", "PS", "N/A", "Fighting", "Namco", "3.27", "2.22", "1.4", "0.29", "7.16", "9.1", "Namco"),
		row("Tekken 5", "PS2", "2005", "Fighting", "Namco", "0.93", "1.94", "0.31", "0.7", "3.87", "8.9", "Namco"),
	})

	got := Clean(raw)
	if got.Len() != 1 {
		t.Fatalf("Clean() retained %d rows, want 1", got.Len())
	}
	if got.Records[0].Name != "Tekken 5" {
		t.Errorf("retained %q, want %q", got.Records[0].Name, "Tekken 5")
	}
}

func TestClean_MissingColumnsAreNull(t *testing.T) {
	// A hand-built table without the text columns still cleans.
	raw := NewRawTable(
		[]string{"Platform", "Year_of_Release", "Global_Sales"},
		[][]string{{"PS2", "2004", "1.5"}, {"PS2", "2004"}},
	)

	got := Clean(raw)
	if got.Len() != 1 {
		t.Fatalf("Clean() retained %d rows, want 1", got.Len())
	}
	rec := got.Records[0]
	if rec.Name != "nan" || rec.Genre != "nan" || rec.Developer != "nan" {
		t.Errorf("missing text columns = %q/%q/%q, want nan", rec.Name, rec.Genre, rec.Developer)
	}
	if rec.UserScore.Valid {
		t.Errorf("UserScore = %+v, want null", rec.UserScore)
	}
}

func TestClean_DoesNotMutateInput(t *testing.T) {
	rows := [][]string{
		row("  Spyro  ", "PS", "1998", "Platform", "SCE", "1", "1", "1", "1", "3.21", "8", "Insomniac"),
	}
	raw := NewRawTable(cleanHeader, rows)

	_ = Clean(raw)

	if raw.Rows[0][0] != "  Spyro  " {
		t.Errorf("raw cell modified: %q", raw.Rows[0][0])
	}

	// A literal table has no cached header index; cleaning must not add one.
	bare := &RawTable{Header: cleanHeader, Rows: rows}
	if got := Clean(bare); got.Len() != 1 {
		t.Fatalf("Clean() retained %d rows, want 1", got.Len())
	}
	if bare.index != nil {
		t.Errorf("Clean() cached a header index on its input")
	}
}

func TestClean_Idempotent(t *testing.T) {
	raw := NewRawTable(cleanHeader, [][]string{
		row("Gran Turismo", "PS", "1997", "Racing", "SCE", "4.02", "3.87", "2.54", "0.52", "10.95", "8.7", "PD"),
		row("Obscure", "PSP", "2006", "Puzzle", "N/A", "", "", "", "", "0.1", "tbd", ""),
		row(" NA ", "PS2", "2002", " Action ", "X", "1", "", "", "", "1", "", "Y"),
		row("Halo", "X360", "2007", "Shooter", "MS", "1", "1", "1", "1", "12", "7", "Bungie"),
	})

	once := Clean(raw)
	twice := once.Clean()
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("cleaning twice changed the table (-once +twice):\n%s", diff)
	}
	if diff := cmp.Diff(twice, twice.Clean()); diff != "" {
		t.Errorf("cleaning a third time changed the table:\n%s", diff)
	}
}

func TestClean_IdempotentRoundTrip(t *testing.T) {
	raw := NewRawTable(cleanHeader, [][]string{
		row("Gran Turismo", "PS", "1997", "Racing", "SCE", "4.02", "3.87", "2.54", "0.52", "10.95", "8.7", "PD"),
		row("Obscure", "PSP", "2006", "Puzzle", "N/A", "", "", "", "", "0.1", "tbd", ""),
		row(" NA ", "PS2", "2002", " Action ", "nan", "1", "", "", "", "1", "", "Y"),
		row(" ", "PS3", "2010.0", "NULL", " null ", "0.1", "0.2", "0", "0", "0.30000000000000004", "7", "Z"),
		row("Halo", "X360", "2007", "Shooter", "MS", "1", "1", "1", "1", "12", "7", "Bungie"),
	})

	once := Clean(raw)
	if once.Len() != 4 {
		t.Fatalf("Clean() retained %d rows, want 4", once.Len())
	}
	if once.Records[2].Name != "NA" || once.Records[2].UserScore.Valid {
		t.Fatalf("padded NA row = %+v, want Name \"NA\" and null UserScore", once.Records[2])
	}

	twice := Clean(once.Raw())
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("Clean(Clean(raw).Raw()) mismatch (-once +twice):\n%s", diff)
	}
}

func TestTableRaw(t *testing.T) {
	tbl := NewTable(Record{
		Name: "NA", Platform: "PS2", Genre: "nan", Publisher: "", Developer: "Insomniac",
		YearOfRelease: Num(2002), UserScore: Null(),
		NASales: Num(0.1), EUSales: Num(12.8), JPSales: Null(), OtherSales: Num(0),
		GlobalSales: Num(1e-7),
	})

	raw := tbl.Raw()

	wantHeader := make([]string, len(Schema))
	for i, field := range Schema {
		wantHeader[i] = field.Name
	}
	if diff := cmp.Diff(wantHeader, raw.Header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	want := map[string]string{
		ColName:          " NA",
		ColPlatform:      "PS2",
		ColGenre:         "nan",
		ColPublisher:     " ",
		ColDeveloper:     "Insomniac",
		ColYearOfRelease: "2002",
		ColUserScore:     "",
		ColEUSales:       "12.8",
		ColJPSales:       "",
		ColOtherSales:    "0",
		ColGlobalSales:   "0.0000001",
	}
	for col, w := range want {
		got, ok := raw.Cell(0, col)
		if !ok {
			t.Errorf("column %s missing", col)
			continue
		}
		if got != w {
			t.Errorf("%s = %q, want %q", col, got, w)
		}
	}

	var nilTable *Table
	if got := nilTable.Raw(); got.Len() != 0 || len(got.Header) != len(Schema) {
		t.Errorf("(*Table)(nil).Raw() = %d rows, %d columns", got.Len(), len(got.Header))
	}
}

func TestTableClean_AppliesRowChecks(t *testing.T) {
	in := NewTable(
		Record{Name: " Crash ", Platform: "PS", Genre: "Platform", YearOfRelease: Num(1996), GlobalSales: Num(6.82)},
		Record{Name: "No Year", Platform: "PS", YearOfRelease: Null(), GlobalSales: Num(1)},
		Record{Name: "Other", Platform: "N64", YearOfRelease: Num(1996), GlobalSales: Num(11.9)},
	)

	got := in.Clean()
	if got.Len() != 1 {
		t.Fatalf("Clean() retained %d rows, want 1", got.Len())
	}
	if got.Records[0].Name != "Crash" {
		t.Errorf("Name = %q, want trimmed %q", got.Records[0].Name, "Crash")
	}
	if in.Records[0].Name != " Crash " {
		t.Errorf("input record modified: %q", in.Records[0].Name)
	}
}

func TestClean_NilAndEmpty(t *testing.T) {
	if got := Clean(nil); got.Len() != 0 {
		t.Errorf("Clean(nil).Len() = %d, want 0", got.Len())
	}
	if got := Clean(NewRawTable(cleanHeader, nil)); got.Len() != 0 {
		t.Errorf("Clean(empty).Len() = %d, want 0", got.Len())
	}
	var nilTable *Table
	if got := nilTable.Clean(); got.Len() != 0 {
		t.Errorf("(*Table)(nil).Clean().Len() = %d, want 0", got.Len())
	}
}
