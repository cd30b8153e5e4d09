// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package output writes report records either as plain text lines or as
// NDJSON (Newline Delimited JSON), one record per line in both cases.
//
// Records that implement Liner control their own text rendering; anything
// else is printed with fmt.Sprint. In NDJSON mode every record is encoded
// with encoding/json.
//
// Example usage:
//
//	w, err := output.NewWriter(os.Stdout, output.FormatText)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	if err := w.Write(record); err != nil {
//	    return err
//	}
package output
