package controllers

import "github.com/go-playground/validator/v10"

// validate 控制器共享的DTO约束校验器，在进入服务层之前执行
var validate = validator.New()
