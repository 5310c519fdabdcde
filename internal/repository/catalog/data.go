package catalog

import "github.com/trip-planner/internal/domain"

// Static reference data. Content is illustrative placeholder data carried over
// from the product catalog; lists stay in display order.

var cities = []domain.City{
	{
		ID:                  "xian",
		Name:                "西安",
		Description:         "古都，兵马俑和古城墙的所在地",
		Image:               "https://images.unsplash.com/photo-1607478900766-efe13248b125?w=640&q=80",
		CulturalAttractions: []string{"秦始皇兵马俑", "西安城墙", "大明宫国家遗址公园"},
		NaturalAttractions:  []string{"华山", "钟南山", "太白山"},
		FoodCulture:         []string{"肉夹馍", "凉皮", "冰峰"},
	},
	{
		ID:                  "qingdao",
		Name:                "青岛",
		Description:         "海滨城市，著名的啤酒和海鲜",
		CulturalAttractions: []string{"栈桥", "八大关", "啤酒博物馆"},
		NaturalAttractions:  []string{"崂山风景区", "小麦岛", "金沙滩"},
		FoodCulture:         []string{"青岛脂渣", "青岛啤酒", "海肠捞饭"},
	},
	{
		ID:                  "beijing",
		Name:                "北京",
		Description:         "中国首都，拥有丰富的历史文化遗产",
		CulturalAttractions: []string{"故宫博物院", "八达岭长城", "颐和园"},
		NaturalAttractions:  []string{"百里画廊", "京东大峡谷", "八达岭国家森林公园"},
		FoodCulture:         []string{"北京烤鸭", "稻香村糕点", "涮羊肉"},
	},
	{
		ID:                  "nanjing",
		Name:                "南京",
		Description:         "六朝古都，历史与现代交融的城市",
		CulturalAttractions: []string{"中山陵", "夫子庙", "南京博物院"},
		NaturalAttractions:  []string{"紫金山", "栖霞山", "玄武湖"},
		FoodCulture:         []string{"盐水鸭", "鸭血粉丝汤", "桂花糖芋苗"},
	},
	{
		ID:                  "changsha",
		Name:                "长沙",
		Description:         "湖南省会，充满活力的文化名城",
		CulturalAttractions: []string{"湖南省博物馆", "天心阁", "靖港古镇"},
		NaturalAttractions:  []string{"岳麓山", "橘子洲", "大围山国家森林公园"},
		FoodCulture:         []string{"口味虾", "糖油粑粑", "长沙米粉"},
	},
	{
		ID:                  "chongqing",
		Name:                "重庆",
		Description:         "山城、火锅之都，长江上游经济中心",
		CulturalAttractions: []string{"白公馆和渣滓洞", "洪崖洞", "大足石刻"},
		NaturalAttractions:  []string{"黑山谷", "长江三峡", "武隆喀斯特"},
		FoodCulture:         []string{"重庆火锅", "重庆烤鱼", "重庆小面"},
	},
	{
		ID:                  "haerbin",
		Name:                "哈尔滨",
		Description:         "冰城，以冰雪文化和俄罗斯风情著称",
		CulturalAttractions: []string{"圣索菲亚大教堂", "哈尔滨冰雪大世界", "中央大街"},
		NaturalAttractions:  []string{"太阳岛风景区", "凤凰山国家森林公园", "镜泊湖"},
		FoodCulture:         []string{"红肠", "马迭尔冰棍", "大列巴"},
	},
	{
		ID:                  "hangzhou",
		Name:                "杭州",
		Description:         "风景秀丽的城市，以西湖闻名",
		CulturalAttractions: []string{"灵隐寺", "南宋御街", "杭州宋城"},
		NaturalAttractions:  []string{"西湖", "九溪十八涧", "千岛湖"},
		FoodCulture:         []string{"龙井虾仁", "东坡肉", "叫化鸡"},
	},
	{
		ID:                  "guizhou",
		Name:                "贵州",
		Description:         "多彩贵州，自然风光与民族文化的结合",
		CulturalAttractions: []string{"青岩古镇", "西江千户苗寨", "肇兴侗寨"},
		NaturalAttractions:  []string{"黄果树瀑布", "荔波小七孔", "梵净山"},
		FoodCulture:         []string{"酸汤鱼", "丝娃娃", "花溪牛肉粉"},
	},
	{
		ID:                  "chengdu",
		Name:                "成都",
		Description:         "悠闲的天府之国，美食与大熊猫的家乡",
		CulturalAttractions: []string{"武侯祠", "杜甫草堂", "锦里古街"},
		NaturalAttractions:  []string{"都江堰", "青城山", "西岭雪山"},
		FoodCulture:         []string{"成都火锅", "担担面", "钟水饺"},
	},
	{
		ID:                  "lhasa",
		Name:                "拉萨",
		Description:         "西藏首府，雪域高原上的圣城",
		CulturalAttractions: []string{"布达拉宫", "大昭寺", "八廓街"},
		NaturalAttractions:  []string{"纳木错", "羊卓雍措", "念青唐古拉山"},
		FoodCulture:         []string{"酥油茶", "糌粑", "牦牛肉干"},
	},
	{
		ID:                  "tianjin",
		Name:                "天津",
		Description:         "北方港口城市，中西文化交融的城市",
		CulturalAttractions: []string{"古文化街", "五大道", "天津之眼"},
		NaturalAttractions:  []string{"盘山", "七里海湿地", "蓟州溶洞"},
		FoodCulture:         []string{"狗不理包子", "煎饼果子", "罾蹦鲤鱼"},
	},
	{
		ID:                  "shanghai",
		Name:                "上海",
		Description:         "国际化大都市，东方明珠",
		CulturalAttractions: []string{"外滩", "东方明珠广播电视", "豫园"},
		NaturalAttractions:  []string{"佘山国家森林公园", "东滩湿地公园", "辰山植物园"},
		FoodCulture:         []string{"虾子大乌参", "草头圈子", "南翔小笼包"},
	},
	{
		ID:                  "guangzhou",
		Name:                "广州",
		Description:         "华南地区的经济中心，粤菜美食之都",
		CulturalAttractions: []string{"广州塔", "陈家祠", "黄埔军校旧址"},
		NaturalAttractions:  []string{"白云山", "莲花山", "从化千泷沟大瀑布"},
		FoodCulture:         []string{"白切鸡", "烧鹅", "龙虎斗"},
	},
	{
		ID:                  "huhehaote",
		Name:                "呼和浩特",
		Description:         "内蒙古首府，草原文化与现代城市的融合",
		CulturalAttractions: []string{"昭君博物院", "大召寺", "塞上老街"},
		NaturalAttractions:  []string{"大青山", "哈素海", "敕勒川高山草原"},
		FoodCulture:         []string{"手把肉", "烤全羊", "烧麦"},
	},
	{
		ID:                  "hainan",
		Name:                "海南",
		Description:         "热带海岛省份，阳光沙滩的度假胜地",
		CulturalAttractions: []string{"海口骑楼老街", "博鳌亚洲论坛永久会址", "东坡书院"},
		NaturalAttractions:  []string{"三亚亚龙湾", "呀诺达雨林", "五指山"},
		FoodCulture:         []string{"文昌鸡", "加积鸭", "东山羊"},
	},
}

var categories = []domain.Category{
	{
		ID:          domain.CategoryCulture,
		Name:        "人文景观",
		Icon:        "🏛️",
		Description: "探索历史文化遗迹、博物馆和传统建筑",
	},
	{
		ID:          domain.CategoryNature,
		Name:        "自然景观",
		Icon:        "🏞️",
		Description: "欣赏山水风光、公园、自然保护区",
	},
	{
		ID:          domain.CategoryFood,
		Name:        "饮食文化",
		Icon:        "🍲",
		Description: "品尝当地特色美食、了解饮食传统",
	},
}

// fallbackSubcategories is returned whenever the (city, category) pair has no
// attribute list. A fixed, never-empty sequence: the picker flow must always
// have something to offer.
var fallbackSubcategories = []domain.Subcategory{
	{ID: "history", Name: "历史古迹", Description: "参观著名的历史遗迹和纪念地"},
	{ID: "museum", Name: "博物馆", Description: "探索艺术和历史博物馆"},
	{ID: "architecture", Name: "传统建筑", Description: "欣赏传统风格建筑和街区"},
	{ID: "performance", Name: "传统表演", Description: "观看当地传统文化表演"},
}
