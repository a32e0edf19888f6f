package main

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/subcmd/history"
	"github.com/footprint-tools/subcmd/internal/ui/style"
)

const historyLimit = 20

func (d *demo) withHistory(fn func(*history.Store) error) error {
	store, err := d.openHistory()
	if err != nil {
		return fmt.Errorf("打开订单记录失败: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func (d *demo) listHistory(filter []string) error {
	if len(filter) > 1 {
		return fmt.Errorf("最多指定一个命令, 实际接收到了 %d 个", len(filter))
	}
	command := ""
	if len(filter) == 1 {
		command = filter[0]
	}

	return d.withHistory(func(store *history.Store) error {
		entries, err := store.List(command, historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(d.out, "还没有订单记录。")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(d.out, "%s  %s  %s  %s\n",
				style.Warning(e.ShortID()),
				style.Muted(e.CreatedAt.Local().Format("2006-01-02 15:04")),
				style.Info(e.Command),
				e.Transcript,
			)
		}
		return nil
	})
}

func (d *demo) showHistory(id string) error {
	return d.withHistory(func(store *history.Store) error {
		e, err := store.Get(id)
		if err != nil {
			return describeLookup(id, err)
		}
		fmt.Fprintln(d.out, e.Transcript)
		return nil
	})
}

func (d *demo) forgetHistory(id string) error {
	return d.withHistory(func(store *history.Store) error {
		e, err := store.Get(id)
		if err != nil {
			return describeLookup(id, err)
		}
		if err := store.Delete(e.ID); err != nil {
			return err
		}
		fmt.Fprintln(d.out, style.Success("已删除 "+e.ShortID()))
		return nil
	})
}

func describeLookup(id string, err error) error {
	switch {
	case errors.Is(err, history.ErrNotFound):
		return fmt.Errorf("没有编号为 %s 的记录", id)
	case errors.Is(err, history.ErrAmbiguous):
		return fmt.Errorf("编号 %s 对应多条记录, 请多写几位", id)
	default:
		return err
	}
}
