package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/footprint-tools/subcmd/dialog"
	"github.com/footprint-tools/subcmd/history"
	"github.com/footprint-tools/subcmd/internal/ui/style"
)

var (
	breads   = []string{"全麦面包", "芝麻面包", "生菜包"}
	toppings = []string{"生菜", "西红柿片", "洋葱", "酸黄瓜", "培根"}
	// unitPrice is in fen.
	unitPrice = big.NewInt(2800)
)

type demo struct {
	out         io.Writer
	openHistory func() (*history.Store, error)
}

// order is one burger order collected by the order dialog.
type order struct {
	Bread    string
	Toppings []string
	Cheese   bool
	Count    *big.Int
	Note     string
}

func askOrder(ctx context.Context, src *dialog.AnswerSource) (order, error) {
	var (
		o   order
		err error
	)
	if o.Bread, err = src.Select(ctx, "选择面包", breads); err != nil {
		return o, err
	}
	if o.Toppings, err = src.SelectMultiple(ctx, "选择配料", toppings); err != nil {
		return o, err
	}
	if o.Cheese, err = src.Bool(ctx, "加芝士吗?"); err != nil {
		return o, err
	}
	for {
		if o.Count, err = src.Number(ctx, "要几份?"); err != nil {
			return o, err
		}
		if o.Count.Sign() > 0 {
			break
		}
	}
	if o.Note, err = src.Editor(ctx, "备注 (Ctrl+D 完成)"); err != nil {
		return o, err
	}
	return o, nil
}

func (d *demo) order(ctx context.Context, src *dialog.AnswerSource) error {
	o, err := askOrder(ctx, src)
	if err != nil {
		return err
	}

	member, err := src.Bool(ctx, "使用会员卡吗?")
	if err != nil {
		return err
	}
	if member {
		_ = src.Password("会员密码:")
	}

	d.printOrder(o, member)
	fmt.Fprintln(d.out, style.Muted("答案记录: "+src.ToJSON()))
	return nil
}

func (d *demo) printOrder(o order, member bool) {
	fmt.Fprintln(d.out, style.Header("订单"))
	fmt.Fprintf(d.out, "   面包: %s\n", o.Bread)
	if len(o.Toppings) == 0 {
		fmt.Fprintln(d.out, "   配料: 无")
	} else {
		fmt.Fprintf(d.out, "   配料: %s\n", strings.Join(o.Toppings, "、"))
	}
	if o.Cheese {
		fmt.Fprintln(d.out, "   加芝士")
	}
	fmt.Fprintf(d.out, "   份数: %s\n", o.Count)
	if note := strings.TrimSpace(o.Note); note != "" {
		fmt.Fprintf(d.out, "   备注: %s\n", note)
	}
	total := total(o.Count, member)
	fmt.Fprintln(d.out, style.Success("   合计: "+yuan(total)))
}

// total applies the 10% member discount.
func total(count *big.Int, member bool) *big.Int {
	t := new(big.Int).Mul(count, unitPrice)
	if member {
		t.Mul(t, big.NewInt(9))
		t.Quo(t, big.NewInt(10))
	}
	return t
}

func yuan(fen *big.Int) string {
	q, r := new(big.Int).QuoRem(fen, big.NewInt(100), new(big.Int))
	return fmt.Sprintf("%s.%02d 元", q, r.Abs(r).Int64())
}

func (d *demo) menu() error {
	fmt.Fprintln(d.out, style.Header("面包"))
	for _, b := range breads {
		fmt.Fprintln(d.out, "   "+b)
	}
	fmt.Fprintln(d.out, style.Header("配料"))
	for _, t := range toppings {
		fmt.Fprintln(d.out, "   "+t)
	}
	fmt.Fprintf(d.out, "每份 %s\n", yuan(unitPrice))
	return nil
}

func (d *demo) greet(name string) error {
	fmt.Fprintf(d.out, "你好, %s! 欢迎光临。\n", name)
	return nil
}

func (d *demo) tags(tags []string) error {
	if len(tags) == 0 {
		fmt.Fprintln(d.out, "没有标签。")
		return nil
	}
	fmt.Fprintf(d.out, "标签: %s\n", strings.Join(tags, ", "))
	return nil
}

func (d *demo) price(count *big.Int) error {
	if count.Sign() < 0 {
		return errors.New("份数不能是负数")
	}
	fmt.Fprintf(d.out, "%s 份共 %s\n", count, yuan(total(count, false)))
	return nil
}

func (d *demo) sum(amounts []*big.Int) error {
	s := new(big.Int)
	for _, a := range amounts {
		s.Add(s, a)
	}
	fmt.Fprintln(d.out, s)
	return nil
}

func (d *demo) receipt(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s 是目录", path)
	}
	fmt.Fprintf(d.out, "%s: %d 字节\n", path, info.Size())
	return nil
}

func (d *demo) receipts(paths []string) error {
	var errs []error
	for _, p := range paths {
		if err := d.receipt(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *demo) spicy(on bool) error {
	if on {
		fmt.Fprintln(d.out, "已设置加辣。")
	} else {
		fmt.Fprintln(d.out, "已设置不辣。")
	}
	return nil
}

func (d *demo) survey(answers []bool) error {
	yes := 0
	for _, a := range answers {
		if a {
			yes++
		}
	}
	fmt.Fprintf(d.out, "满意 %d / %d\n", yes, len(answers))
	return nil
}
