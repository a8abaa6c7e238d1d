// Package ocr recognizes single digits in puzzle grid cells using
// Tesseract (via gosseract/v2).
//
// Tesseract must be installed on the system together with the language
// data for the configured language (default "eng"):
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//   - Windows: https://github.com/UB-Mannheim/tesseract/wiki
//
// Recognition is constrained to the digit charset and single-character
// page segmentation, so a cell either yields one digit or nothing.
// Anything that is not exactly one digit normalizes to 0, the empty
// cell marker.
package ocr
