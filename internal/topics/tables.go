package topics

import "github.com/abhisek/quizclash/internal/quiz"

// Category ids are stable, language-invariant identifiers.
const (
	CategoryHistory    = "History"
	CategoryScience    = "Science"
	CategoryArts       = "Arts"
	CategoryGeneral    = "General"
	CategoryGeography  = "Geography"
	CategoryMovies     = "Movies"
	CategoryMusic      = "Music"
	CategoryGaming     = "Gaming"
	CategorySports     = "Sports"
	CategoryTech       = "Tech"
	CategoryMythology  = "Mythology"
	CategoryLiterature = "Literature"
	CategoryNature     = "Nature"
	CategoryFood       = "Food"
	CategorySpace      = "Space"
	CategoryPhilosophy = "Philosophy"
)

// Categories lists every category id in display order.
var Categories = []string{
	CategoryHistory, CategoryScience, CategoryArts, CategoryGeneral,
	CategoryGeography, CategoryMovies, CategoryMusic, CategoryGaming,
	CategorySports, CategoryTech, CategoryMythology, CategoryLiterature,
	CategoryNature, CategoryFood, CategorySpace, CategoryPhilosophy,
}

// masterSubtopics holds the canonical (English) subtopic labels, which
// double as stable topic ids. Localized tables below are index-parallel
// to these lists.
var masterSubtopics = map[string][]string{
	CategoryHistory:    {"Ancient Egypt", "Roman Empire", "World War II", "Cold War", "Renaissance", "Industrial Revolution", "French Revolution", "American Civil War", "Feudal Japan", "The Vikings", "Aztec Empire", "Mongol Empire", "The Crusades", "Victorian Era", "Prehistoric Era", "Decolonization"},
	CategoryScience:    {"Quantum Physics", "Genetics", "Organic Chemistry", "Neuroscience", "Botany", "Astronomy", "Geology", "Thermodynamics", "Marine Biology", "Evolution", "Particle Physics", "Immunology", "Paleontology", "Climate Science", "Robotics", "Ecology"},
	CategoryArts:       {"Impressionism", "Renaissance Art", "Cubism", "Surrealism", "Baroque", "Modernism", "Sculpture", "Graphic Design", "Fashion History", "Photography", "Theater", "Opera", "Abstract Expressionism", "Pottery", "Calligraphy", "Gothic Architecture"},
	CategoryGeneral:    {"AI Regulation", "Creator Economy", "Inventions", "World Capitals", "Currencies", "Nobel Prizes", "Phobias", "Brand Logos", "Cryptocurrency", "Viral Trends", "Board Games", "Card Games", "Superheroes", "Digital Wellbeing", "Cocktails", "Car Brands"},
	CategoryGeography:  {"Capitals", "Landmarks", "Mountains", "Rivers", "Deserts", "Islands", "Volcanos", "Flags", "Population Stats", "Climate Zones", "Oceans", "US States", "European Countries", "Asian Cities", "African Nations", "Borders"},
	CategoryMovies:     {"Oscars", "Sci-Fi", "Horror", "Marvel Cinematic Universe", "Star Wars", "Pixar", "Streaming Originals", "Franchise Reboots", "Famous Directors", "Movie Soundtracks", "Cult Classics", "Anime Movies", "French Cinema", "Silent Era", "Special Effects", "Movie Villains"},
	CategoryMusic:      {"Rock & Roll", "Pop Music", "Jazz", "Classical", "Hip Hop", "K-Pop", "EDM", "Heavy Metal", "Blues", "Country", "Opera", "Musical Instruments", "90s Hits", "One Hit Wonders", "Music Theory", "Woodstock"},
	CategoryGaming:     {"Nintendo", "PlayStation", "Xbox", "PC Gaming", "RPGs", "FPS", "Live Service Games", "Retro Gaming", "Esports", "Minecraft", "Pokemon", "Zelda", "Mario", "Indie Games", "Speedrunning", "Cross-Platform Gaming"},
	CategorySports:     {"Soccer", "Basketball", "Baseball", "Tennis", "Golf", "Formula 1", "Olympics", "Boxing", "MMA", "Cricket", "Rugby", "Swimming", "Winter Sports", "Skateboarding", "Wrestling", "World Cup"},
	CategoryTech:       {"Artificial Intelligence", "Smartphones", "Cloud Computing", "Social Media", "Coding", "Cybersecurity", "Space Tech", "Spatial Computing", "Blockchain", "Robots", "Computer Hardware", "Big Data", "Startups", "Hackers", "Gaming Tech", "Generative AI Apps"},
	CategoryMythology:  {"Greek Mythology", "Norse Mythology", "Egyptian Mythology", "Roman Mythology", "Japanese Folklore", "Chinese Mythology", "Celtic Mythology", "Aztec Mythology", "Hindu Mythology", "Native American", "Legendary Monsters", "Epic Heroes", "Underworlds", "Creation Myths", "Gods of War", "Tricksters"},
	CategoryLiterature: {"Shakespeare", "Classic Novels", "Dystopian Fiction", "Fantasy", "Sci-Fi Books", "Poetry", "Horror", "Mystery", "Comics & Manga", "Nobel Laureates", "Fairy Tales", "Greek Epics", "Russian Literature", "American Literature", "British Literature", "Playwrights"},
	CategoryNature:     {"Mammals", "Birds", "Insects", "Marine Life", "Dinosaurs", "Rain Forests", "Deserts", "Weather", "Flowers", "Trees", "National Parks", "Survival Skills", "Evolution", "Endangered Species", "Fungi", "Gems & Minerals"},
	CategoryFood:       {"Italian Cuisine", "French Cuisine", "Mexican Food", "Japanese Food", "Chinese Food", "Indian Food", "Korean Cuisine", "Desserts", "Wine", "Coffee", "High-Protein Meals", "Street Food", "Fast Food", "Baking", "Vegan", "Zero-Proof Drinks"},
	CategorySpace:      {"Solar System", "Black Holes", "Mars", "Moon Landing", "Constellations", "Stars", "Galaxies", "Astronauts", "Space Race", "Telescopes", "Exoplanets", "Gravity", "Rockets", "SETI", "International Space Station", "Big Bang"},
	CategoryPhilosophy: {"Ethics", "Logic", "Metaphysics", "Existentialism", "Stoicism", "Nihilism", "Political Philosophy", "Eastern Philosophy", "Ancient Greek", "Enlightenment", "Utilitarianism", "Aesthetics", "Epistemology", "Philosophy of Mind", "Famous Quotes", "Paradoxes"},
}

// localizedSubtopics holds the label tables for languages with a
// localized product surface. Spanish and French ship English labels, so
// they resolve through the master fallback path.
var localizedSubtopics = map[quiz.Language]map[string][]string{
	quiz.LangKorean: {
		CategoryHistory:    {"고대 이집트", "로마 제국", "제2차 세계대전", "냉전", "르네상스", "산업 혁명", "프랑스 혁명", "미국 내전", "봉건 일본", "바이킹", "아즈텍 제국", "몽골 제국", "십자군", "빅토리아 시대", "선사 시대", "탈식민지화"},
		CategoryScience:    {"양자 역학", "유전학", "유기 화학", "신경 과학", "식물학", "천문학", "지질학", "열역학", "해양 생물학", "진화론", "입자 물리학", "면역학", "고생물학", "기후 과학", "로봇 공학", "생태학"},
		CategoryArts:       {"인상주의", "르네상스 예술", "입체파", "초현실주의", "바로크", "모더니즘", "조각", "그래픽 디자인", "패션 역사", "사진", "연극", "오페라", "추상 표현주의", "도예", "서예", "고딕 건축"},
		CategoryGeneral:    {"AI 규제", "크리에이터 이코노미", "발명품", "세계 수도", "통화", "노벨상", "공포증", "브랜드 로고", "암호화폐", "바이럴 트렌드", "보드 게임", "카드 게임", "슈퍼히어로", "디지털 웰빙", "칵테일", "자동차 브랜드"},
		CategoryGeography:  {"수도", "랜드마크", "산맥", "강", "사막", "섬", "화산", "국기", "인구 통계", "기후대", "대양", "미국 주", "유럽 국가", "아시아 도시", "아프리카 국가", "국경"},
		CategoryMovies:     {"오스카", "SF", "공포", "마블 시네마틱 유니버스", "스타워즈", "픽사", "스트리밍 오리지널", "프랜차이즈 리부트", "유명 감독", "영화 사운드트랙", "컬트 클래식", "애니메이션 영화", "프랑스 영화", "무성 영화 시대", "특수 효과", "영화 빌런"},
		CategoryMusic:      {"락앤롤", "팝 음악", "재즈", "클래식", "힙합", "K-팝", "EDM", "헤비 메탈", "블루스", "컨트리", "오페라", "악기", "90년대 히트곡", "원 히트 원더", "음악 이론", "우드스탁"},
		CategoryGaming:     {"닌텐도", "플레이스테이션", "엑스박스", "PC 게임", "RPG", "FPS", "라이브 서비스 게임", "레트로 게임", "e스포츠", "마인크래프트", "포켓몬", "젤다", "마리오", "인디 게임", "스피드런", "크로스플랫폼 게임"},
		CategorySports:     {"축구", "농구", "야구", "테니스", "골프", "포뮬러 1", "올림픽", "복싱", "MMA", "크리켓", "럭비", "수영", "겨울 스포츠", "스케이트보드", "레슬링", "월드컵"},
		CategoryTech:       {"인공지능", "스마트폰", "클라우드 컴퓨팅", "소셜 미디어", "코딩", "사이버 보안", "우주 기술", "공간 컴퓨팅", "블록체인", "로봇", "컴퓨터 하드웨어", "빅데이터", "스타트업", "해커", "게이밍 기술", "생성형 AI 앱"},
		CategoryMythology:  {"그리스 신화", "북유럽 신화", "이집트 신화", "로마 신화", "일본 설화", "중국 신화", "켈트 신화", "아즈텍 신화", "힌두 신화", "북미 원주민", "전설의 괴물", "서사시 영웅", "지하 세계", "창세 신화", "전쟁의 신", "트릭스터"},
		CategoryLiterature: {"셰익스피어", "고전 소설", "디스토피아 소설", "판타지", "SF 도서", "시", "공포", "미스터리", "만화 및 망가", "노벨 문학상", "동화", "그리스 서사시", "러시아 문학", "미국 문학", "영국 문학", "극작가"},
		CategoryNature:     {"포유류", "조류", "곤충", "해양 생물", "공룡", "열대 우림", "사막", "날씨", "꽃", "나무", "국립공원", "생존 기술", "진화", "멸종 위기종", "균류", "보석 및 광물"},
		CategoryFood:       {"이탈리아 요리", "프랑스 요리", "멕시코 음식", "일본 음식", "중국 음식", "인도 음식", "한식", "디저트", "와인", "커피", "고단백 식단", "길거리 음식", "패스트 푸드", "베이킹", "비건", "논알코올 음료"},
		CategorySpace:      {"태양계", "블랙홀", "화성", "달 착륙", "별자리", "별", "은하", "우주 비행사", "우주 경쟁", "망원경", "외계 행성", "중력", "로켓", "SETI", "국제 우주 정거장", "빅뱅"},
		CategoryPhilosophy: {"윤리학", "논리학", "형이상학", "실존주의", "스토아학파", "허무주의", "정치 철학", "동양 철학", "고대 그리스", "계몽주의", "공리주의", "미학", "인식론", "심리 철학", "유명한 명언", "역설"},
	},
	quiz.LangJapanese: {
		CategoryHistory:    {"古代エジプト", "ローマ帝国", "第二次世界大戦", "冷戦", "ルネサンス", "産業革命", "フランス革命", "アメリカ南北戦争", "封建時代の日本", "バイキング", "アズテック帝国", "モンゴル帝国", "十字軍", "ビクトリア朝", "先史時代", "非植民地化"},
		CategoryScience:    {"量子力学", "遺伝学", "有機化学", "神経科学", "植物学", "天文学", "地質学", "熱力学", "海洋生物学", "進化論", "素粒子物理学", "免疫学", "古生物学", "気候科学", "ロボット工学", "生態学"},
		CategoryArts:       {"印象派", "ルネサンス美術", "キュビスム", "シュルレアリスム", "バロック", "モダニズム", "彫刻", "グラフィックデザイン", "ファッションの歴史", "写真", "演劇", "オペラ", "抽象表現主義", "陶芸", "書道", "ゴシック建築"},
		CategoryGeneral:    {"AI規制", "クリエイターエコノミー", "発明", "世界の首都", "通貨", "ノーベル賞", "恐怖症", "ブランドロゴ", "暗号資産", "バイラルトレンド", "ボードゲーム", "カードゲーム", "スーパーヒーロー", "デジタルウェルビーイング", "カクテル", "自動車ブランド"},
		CategoryGeography:  {"首都", "ランドマーク", "山脈", "川", "砂漠", "島", "火山", "国旗", "人口統計", "気候帯", "海洋", "米国の州", "欧州の国々", "アジアの都市", "アフリカの諸国", "国境"},
		CategoryMovies:     {"オスカー", "SF", "ホラー", "マーベル・シネマティック・ユニバース", "スター・ウォーズ", "ピクサー", "ストリーミングオリジナル", "フランチャイズ・リブート", "有名監督", "映画音楽", "カルト・クラシック", "アニメ映画", "フランス映画", "サイレント映画時代", "特殊効果", "映画のヴィラン"},
		CategoryMusic:      {"ロックンロール", "ポップ・ミュージック", "ジャズ", "クラシック", "ヒップホップ", "K-POP", "EDM", "ヘヴィメタル", "ブルース", "カントリー", "オペラ", "楽器", "90年代ヒット曲", "ワン・ヒット・ワンダー", "音楽理論", "ウッドストック"},
		CategoryGaming:     {"任天堂", "プレイステーション", "Xbox", "PCゲーム", "RPG", "FPS", "ライブサービスゲーム", "レトロゲーム", "eスポーツ", "マインクラフト", "ポケモン", "ゼルダ", "マリオ", "インディーゲーム", "スピードラン", "クロスプラットフォームゲーム"},
		CategorySports:     {"サッカー", "バスケットボール", "野球", "テニス", "ゴルフ", "F1", "オリンピック", "ボクシング", "総合格闘技", "クリケット", "ラグビー", "水泳", "ウィンタースポーツ", "スケートボード", "レスリング", "ワールドカップ"},
		CategoryTech:       {"人工知能", "スマートフォン", "クラウドコンピューティング", "ソーシャルメディア", "コーディング", "サイバーセキュリティ", "宇宙技術", "空間コンピューティング", "ブロックチェーン", "ロボット", "コンピュータハードウェア", "ビッグデータ", "スタートアップ", "ハッカー", "ゲーミング技術", "生成AIアプリ"},
		CategoryMythology:  {"ギリシャ神話", "北欧神話", "エジプト神話", "ローマ神話", "日本伝承", "中国神話", "ケルト神話", "アズテック神話", "ヒンドゥー神話", "ネイティブ・アメリカン", "伝説の怪物", "叙事詩の英雄", "冥界", "創世神話", "軍神", "トリックスター"},
		CategoryLiterature: {"シェイクスピア", "古典小説", "ディストピア小説", "ファンタジー", "SF小説", "詩", "ホラー", "ミステリー", "コミック・漫画", "ノーベル賞作家", "おとぎ話", "ギリシャ叙事詩", "ロシア文学", "アメリカ文学", "イギリス文学", "劇作家"},
		CategoryNature:     {"哺乳類", "鳥類", "昆虫", "海洋生物", "恐竜", "熱帯雨林", "砂漠", "天気", "花", "木々", "国立公園", "生存技術", "進化", "絶滅危惧種", "菌類", "宝石・鉱物"},
		CategoryFood:       {"イタリア料理", "フランス料理", "メキシコ料理", "日本料理", "中華料理", "インド料理", "韓国料理", "デザート", "ワイン", "コーヒー", "高タンパク食", "ストリートフード", "ファストフード", "ベーキング", "ヴィーガン", "ノンアルコールドリンク"},
		CategorySpace:      {"太陽系", "ブラックホール", "火星", "月面着陸", "星座", "星", "銀河", "宇宙飛行士", "宇宙開発競争", "望遠鏡", "系外惑星", "重力", "ロケット", "SETI", "国際宇宙ステーション", "ビッグバン"},
		CategoryPhilosophy: {"倫理学", "論理学", "形而上学", "実存主義", "ストア派", "虚無主義", "政治哲学", "東洋哲学", "古代ギリシャ", "啓蒙主義", "功利主義", "美学", "認識論", "心の哲学", "有名な名言", "パラドックス"},
	},
	quiz.LangChinese: {
		CategoryHistory:    {"古埃及", "罗马帝国", "第二次世界大战", "冷战", "文艺复兴", "工业革命", "法国大革命", "美国内战", "封建日本", "维京人", "阿兹特克帝国", "蒙古帝国", "十字军东征", "维多利亚时代", "史前时代", "非殖民化"},
		CategoryScience:    {"量子物理", "遗传学", "有机化学", "神经科学", "植物学", "天文学", "地质学", "热力学", "海洋生物学", "进化论", "粒子物理学", "免疫学", "古生物学", "气候科学", "机器人学", "生态学"},
		CategoryArts:       {"印象派", "文艺复兴艺术", "立体主义", "超现实主义", "巴洛克", "现代主义", "雕塑", "平面设计", "时尚史", "摄影", "戏剧", "歌剧", "抽象表现主义", "陶艺", "书法", "哥特式建筑"},
		CategoryGeneral:    {"AI 监管", "创作者经济", "发明", "世界首都", "货币", "诺贝尔奖", "恐惧症", "品牌标志", "加密货币", "病毒式趋势", "棋盘游戏", "纸牌游戏", "超级英雄", "数字健康", "鸡尾酒", "汽车品牌"},
		CategoryGeography:  {"首都", "地标", "山脉", "河流", "沙漠", "岛屿", "火山", "国旗", "人口统计", "气候带", "海洋", "美国各州", "欧洲国家", "亚洲城市", "非洲国家", "边界"},
		CategoryMovies:     {"奥斯卡", "科幻", "恐怖", "漫威电影宇宙", "星球大战", "皮克斯", "流媒体原创", "系列重启", "著名导演", "电影原声带", "邪典电影", "动画电影", "法国电影", "无声时代", "特效", "电影反派"},
		CategoryMusic:      {"摇滚乐", "流行音乐", "爵士乐", "古典音乐", "嘻哈", "K-Pop", "电子舞曲", "重金属", "蓝调", "乡村音乐", "歌剧", "乐器", "90年代金曲", "一曲成名", "乐理", "伍德斯托克"},
		CategoryGaming:     {"任天堂", "PlayStation", "Xbox", "PC游戏", "RPG", "FPS", "长线运营游戏", "复古游戏", "电子竞技", "我的世界", "精灵宝可梦", "塞尔达传说", "马里奥", "独立游戏", "速通", "跨平台游戏"},
		CategorySports:     {"足球", "篮球", "棒球", "网球", "高尔夫", "一级方程式", "奥运会", "拳击", "综合格斗", "板球", "橄榄球", "游泳", "冬季运动", "滑板", "摔跤", "世界杯"},
		CategoryTech:       {"人工智能", "智能手机", "云计算", "社交媒体", "编程", "网络安全", "太空技术", "空间计算", "区块链", "机器人", "计算机硬件", "大数据", "初创公司", "黑客", "游戏技术", "生成式 AI 应用"},
		CategoryMythology:  {"希腊神话", "北欧神话", "埃及神话", "罗马神话", "日本民间传说", "中国神话", "凯尔特神话", "阿兹特克神话", "印度神话", "美洲原住民", "传奇怪物", "史诗英雄", "冥界", "创世神话", "战神", "恶作剧之神"},
		CategoryLiterature: {"莎士比亚", "经典小说", "反乌托邦小说", "奇幻", "科幻书籍", "诗歌", "恐怖", "悬疑", "漫画", "诺贝尔奖得主", "童话", "希腊史诗", "俄罗斯文学", "美国文学", "英国文学", "剧作家"},
		CategoryNature:     {"哺乳动物", "鸟类", "昆虫", "海洋生物", "恐龙", "雨林", "沙漠", "天气", "花卉", "树木", "国家公园", "生存技能", "进化论", "濒危物种", "真菌", "宝石与矿物"},
		CategoryFood:       {"意大利美食", "法国美食", "墨西哥美食", "日本料理", "中国美食", "印度美食", "韩国料理", "甜点", "葡萄酒", "咖啡", "高蛋白饮食", "街头小吃", "快餐", "烘焙", "素食", "无酒精饮品"},
		CategorySpace:      {"太阳系", "黑洞", "火星", "登月", "星座", "恒星", "星系", "宇航员", "太空竞赛", "望远镜", "系外行星", "重力", "火箭", "搜寻地外文明", "国际空间站", "大爆炸"},
		CategoryPhilosophy: {"伦理学", "逻辑学", "形而上学", "实存主义", "斯多葛学派", "虚无主义", "政治哲学", "东方哲学", "古希腊", "启蒙运动", "功利主义", "美学", "认识论", "心灵哲学", "名言", "悖论"},
	},
}

// Subtopics returns the subtopic labels for a category in the given
// language, falling back to master labels when no localized table exists.
func Subtopics(categoryID string, lang quiz.Language) []string {
	if table, ok := localizedSubtopics[lang]; ok {
		if labels, ok := table[categoryID]; ok {
			return labels
		}
	}
	return masterSubtopics[categoryID]
}
