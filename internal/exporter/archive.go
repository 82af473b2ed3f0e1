package exporter

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/feanorMV/Excel-Data-Converter/internal/model"
	"github.com/feanorMV/Excel-Data-Converter/internal/parser"
)

// ProgressEvent 归档进度事件（用于 UI 展示）
type ProgressEvent struct {
	Percent int
	Stage   string
}

func reportProgress(progress func(ProgressEvent), percent int, stage string) {
	if progress == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	progress(ProgressEvent{Percent: percent, Stage: stage})
}

// Archive 输出归档。多文件并行抽取时这是唯一共享的可变对象，
// 写入用互斥锁串行化。
type Archive struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	zw     *zip.Writer
	count  int
	closed bool
}

// NewArchive 创建空归档
func NewArchive() *Archive {
	a := &Archive{}
	a.zw = zip.NewWriter(&a.buf)
	return a
}

// Add 写入一个命名荷载
func (a *Archive) Add(name, content string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return fmt.Errorf("archive already closed")
	}
	w, err := a.zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create archive entry %s: %w", name, err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		return fmt.Errorf("failed to write archive entry %s: %w", name, err)
	}
	a.count++
	return nil
}

// Count 已写入的条目数
func (a *Archive) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.count
}

// Close 结束归档并返回 zip 字节
func (a *Archive) Close() ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return a.buf.Bytes(), nil
	}
	a.closed = true
	if err := a.zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return a.buf.Bytes(), nil
}

// ArchiveName 归档文件名：tables_{运行日期}.zip
func ArchiveName(runDate time.Time) string {
	return fmt.Sprintf("tables_%s.zip", parser.FormatFileDate(runDate))
}

// BuildArchive 一次性打包若干输出表
func BuildArchive(files []model.CsvFile, progress func(ProgressEvent)) ([]byte, error) {
	a := NewArchive()

	reportProgress(progress, 0, "打包输出表")
	for i, f := range files {
		if err := a.Add(f.Name, f.Content); err != nil {
			return nil, err
		}
		reportProgress(progress, (i+1)*90/max(len(files), 1), f.Name)
	}

	data, err := a.Close()
	if err != nil {
		return nil, err
	}
	reportProgress(progress, 100, "完成")
	return data, nil
}
