package session

import "fmt"

// SetChecklistItem 勾选/取消勾选清单条目
func (s *State) SetChecklistItem(label string, checked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.checklist[label]; !ok {
		return fmt.Errorf("unknown checklist item: %s", label)
	}
	s.checklist[label] = checked
	return nil
}

// ChecklistItem 单个条目的勾选状态
func (s *State) ChecklistItem(label string) (bool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	checked, ok := s.checklist[label]
	return checked, ok
}

// ChecklistSnapshot 按固定顺序返回条目与勾选状态
func (s *State) ChecklistSnapshot() []ChecklistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]ChecklistEntry, 0, len(ChecklistItems))
	for _, item := range ChecklistItems {
		entries = append(entries, ChecklistEntry{Label: item, Checked: s.checklist[item]})
	}
	return entries
}

// ChecklistEntry 清单条目
type ChecklistEntry struct {
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// ChecklistProgress 完成进度（0.0 - 1.0）
func (s *State) ChecklistProgress() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	checked := 0
	for _, item := range ChecklistItems {
		if s.checklist[item] {
			checked++
		}
	}
	return float64(checked) / float64(len(ChecklistItems))
}

// CompletionLabel 完成百分比标签（如 "50%"）
func (s *State) CompletionLabel() string {
	return fmt.Sprintf("%d%%", int(s.ChecklistProgress()*100))
}
