package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/encoding/charmap"
)

// Encoding selects how CSV files are decoded before parsing.
type Encoding string

const (
	EncodingUTF8        Encoding = "utf8"
	EncodingWindows1252 Encoding = "windows1252"
)

// FileForTable returns the path of the CSV file backing a table.
func FileForTable(dir string, t Table) string {
	return filepath.Join(dir, tableFiles[t])
}

// OpenFileAndDecode reads a CSV file into a dataframe, decoding from
// Windows-1252 when requested (legacy exports of the source dataset use it).
func OpenFileAndDecode(path string, enc Encoding) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open file %s: %v", path, err)
	}

	defer file.Close()

	var reader io.Reader = file
	if enc == EncodingWindows1252 {
		reader = charmap.Windows1252.NewDecoder().Reader(file)
	}

	df := dataframe.ReadCSV(reader, dataframe.WithLazyQuotes(true))
	if df.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse %s: %v", path, df.Error())
	}
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("dataframe is empty")
	}

	return df, nil
}
