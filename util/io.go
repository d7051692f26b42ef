package util

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
)

func ReadJSONFromFile[T any](file string) (T, error) {
	var value T
	data, err := os.ReadFile(file)
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("decode %s: %w", file, err)
	}
	return value, nil
}

func FileExists(file string) bool {
	_, err := os.Stat(file)
	return !errors.Is(err, os.ErrNotExist)
}

// Iterates over the rows of a csv file with a header line.
//
// Columns are matched to the fields of T by their `csv` struct tag, columns
// missing from the header leave the field zero-valued. Rows with a wrong field
// count are skipped. Errors opening the file or reading the header are yielded
// once and end the iteration.
func ReadCSVFromFile[T any](filename string, delimiter rune) func(yield func(T, error) bool) {
	return func(yield func(T, error) bool) {
		var zero T
		file, err := os.Open(filename)
		if err != nil {
			yield(zero, err)
			return
		}
		defer file.Close()

		reader := csv.NewReader(file)
		reader.Comma = delimiter
		reader.FieldsPerRecord = -1
		header, err := reader.Read()
		if err != nil {
			yield(zero, fmt.Errorf("read header of %s: %w", filename, err))
			return
		}
		name_row_mapping := NewDict[string, int](len(header))
		for i, name := range header {
			name = strings.TrimPrefix(name, "\ufeff")
			name_row_mapping[strings.TrimSpace(name)] = i
		}

		typ := reflect.TypeOf(zero)
		num_field := typ.NumField()
		fields := NewList[Triple[int, int, reflect.Kind]](num_field)
		for i := 0; i < num_field; i++ {
			field := typ.Field(i)
			tag := field.Tag.Get("csv")
			if tag == "" {
				continue
			}
			if !name_row_mapping.ContainsKey(tag) {
				continue
			}
			row := name_row_mapping[tag]
			switch field.Type.Kind() {
			case reflect.Bool:
				fields.Add(MakeTriple(i, row, reflect.Bool))
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				fields.Add(MakeTriple(i, row, reflect.Int))
			case reflect.Float32, reflect.Float64:
				fields.Add(MakeTriple(i, row, reflect.Float64))
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				fields.Add(MakeTriple(i, row, reflect.Uint))
			case reflect.String:
				fields.Add(MakeTriple(i, row, reflect.String))
			}
		}
		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			} else if err != nil {
				continue
			}
			if len(record) != len(header) {
				continue
			}
			t := reflect.New(typ).Elem()
			for _, field := range fields {
				index := field.A
				row := field.B
				kind := field.C
				value := strings.TrimSpace(record[row])
				if value == "" {
					continue
				}
				f := t.Field(index)
				switch kind {
				case reflect.Bool:
					num, _ := strconv.ParseBool(value)
					f.SetBool(num)
				case reflect.Int:
					num, _ := strconv.ParseInt(value, 10, 64)
					f.SetInt(num)
				case reflect.Uint:
					num, _ := strconv.ParseUint(value, 10, 64)
					f.SetUint(num)
				case reflect.Float64:
					num, _ := strconv.ParseFloat(value, 64)
					f.SetFloat(num)
				case reflect.String:
					f.SetString(value)
				}
			}
			if !yield(t.Interface().(T), nil) {
				return
			}
		}
	}
}
