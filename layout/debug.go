package layout

import (
	"encoding/json"
	"io"
	"os"
)

// WriteDebugJSON 将构建结果（含换行与分页信息）输出为 JSON 文件，便于调试。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return nil
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeDebugJSON(file, res); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// EncodeDebugJSON 以缩进格式写出构建结果。
func EncodeDebugJSON(w io.Writer, res *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
