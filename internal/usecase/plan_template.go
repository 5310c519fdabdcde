package usecase

import "strings"

// buildFallbackPlan renders the deterministic placeholder itinerary. Pure and
// total: same inputs, same document, no I/O. The structure mirrors what the
// model is prompted for - overview, three days with four time-of-day slots,
// lodging tiers, practical info and closing tips - so the two paths are
// interchangeable for the client.
func buildFallbackPlan(city, category, subcategory string) string {
	r := strings.NewReplacer(
		"{city}", city,
		"{category}", category,
		"{subcategory}", subcategory,
	)
	return r.Replace(fallbackPlanTemplate)
}

const fallbackPlanTemplate = `# {city}{category}旅游规划 - {subcategory}

## 行程概览

这是一份为期3天的{city}{subcategory}体验之旅。本规划结合了{city}最具特色的{subcategory}景点，为您提供深度的旅游体验。

### 最佳旅游季节
春季(3-5月)和秋季(9-11月)是游览{city}的最佳时节，天气宜人，景色优美。

### 交通建议
- 市内交通：地铁、公交车、出租车都很便捷
- 景点间交通：建议根据距离选择合适的交通方式，部分景点可步行到达

## 第一天

### 上午
- **参观点1**: 详细介绍，包括地址、开放时间、门票信息
- **参观点2**: 详细介绍，包括地址、开放时间、门票信息
- 休息与小吃推荐

### 中午
- **午餐推荐**: 当地特色餐厅，招牌菜品推荐

### 下午
- **参观点3**: 详细介绍，包括地址、开放时间、门票信息
- **参观点4**: 详细介绍，包括地址、开放时间、门票信息

### 晚上
- **晚餐推荐**: 当地特色餐厅，招牌菜品推荐
- **夜间活动**: 夜景观赏点或文化演出

## 第二天

### 上午
- **参观点5**: 详细介绍，包括地址、开放时间、门票信息
- **参观点6**: 详细介绍，包括地址、开放时间、门票信息

### 中午
- **午餐推荐**: 当地特色餐厅，招牌菜品推荐

### 下午
- **参观点7**: 详细介绍，包括地址、开放时间、门票信息
- **参观点8**: 详细介绍，包括地址、开放时间、门票信息

### 晚上
- **晚餐推荐**: 当地特色餐厅，招牌菜品推荐
- **夜间活动**: 夜景观赏点或文化演出

## 第三天

### 上午
- **参观点9**: 详细介绍，包括地址、开放时间、门票信息
- **参观点10**: 详细介绍，包括地址、开放时间、门票信息

### 中午
- **午餐推荐**: 当地特色餐厅，招牌菜品推荐

### 下午
- **参观点11**: 详细介绍，包括地址、开放时间、门票信息
- **纪念品购买建议**: 推荐购买的当地特色商品和购物地点

### 晚上
- **晚餐推荐**: 当地特色餐厅，招牌菜品推荐

## 住宿推荐

1. **豪华选择**: 酒店名称，位置优势，价格范围
2. **中档选择**: 酒店名称，位置优势，价格范围
3. **经济选择**: 酒店名称，位置优势，价格范围

## 实用信息

- **紧急电话**: 120(医疗急救)，110(报警)，119(火警)
- **旅游咨询**: 当地旅游咨询中心地址和电话
- **天气提示**: 季节性天气特点和应对建议
- **当地习俗**: 需要注意的当地习俗和禁忌

## 额外建议

- 建议提前预订热门景点门票和特色餐厅
- 带好防晒和雨具，做好天气变化的准备
- 尊重当地文化和习俗，做一个负责任的旅行者

---

希望这份旅游规划能为您的{city}之行带来愉快的体验！`
