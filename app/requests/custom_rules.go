package requests

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/thedevsaddam/govalidator"
)

func init() {
	// max_cn:2000 按字符数（而非字节数）限制最大长度，俄文、中文均按一个字符计
	govalidator.AddCustomRule("max_cn", func(field string, rule string, message string, value interface{}) error {
		str, ok := value.(string)
		if !ok {
			return nil
		}
		l, err := strconv.Atoi(strings.TrimPrefix(rule, "max_cn:"))
		if err != nil {
			return fmt.Errorf("invalid rule %q", rule)
		}
		if utf8.RuneCountInString(str) > l {
			if message != "" {
				return errors.New(message)
			}
			return fmt.Errorf("%s must not exceed %d characters", field, l)
		}
		return nil
	})
}
